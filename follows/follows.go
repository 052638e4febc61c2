// Package follows maintains the directed follow graph and the derived
// friend flag: an edge is a friendship only while its reverse exists.
package follows

import (
	"context"
	"fmt"

	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/store"
)

type Result string

const (
	Followed   Result = "User Followed"
	Unfollowed Result = "User Unfollowed"
)

type Reconciler struct {
	stores *store.Stores
}

func NewReconciler(s *store.Stores) *Reconciler {
	return &Reconciler{stores: s}
}

// Toggle follows the target if no edge exists, otherwise unfollows.
// Both edge mutations and the friend-flag update on the reverse edge
// commit together or not at all.
func (r *Reconciler) Toggle(ctx context.Context, actor *model.User, targetID uint) (Result, error) {
	if actor.ID == targetID {
		return "", apperr.InvalidRequest("Cannot follow yourself")
	}
	target, err := r.stores.Users.ByID(ctx, targetID)
	if err != nil {
		return "", apperr.StoreFault(err)
	}
	if target == nil {
		return "", apperr.NotFound("Target user does not exist")
	}

	var res Result
	err = r.stores.Transact(ctx, func(tx *store.Stores) error {
		mine, err := tx.Follows.Find(ctx, actor.ID, targetID)
		if err != nil {
			return err
		}
		theirs, err := tx.Follows.Find(ctx, targetID, actor.ID)
		if err != nil {
			return err
		}

		if mine != nil {
			if err := tx.Follows.Delete(ctx, mine.ID); err != nil {
				return err
			}
			if theirs != nil {
				if err := tx.Follows.SetFriend(ctx, theirs.ID, false); err != nil {
					return err
				}
			}
			res = Unfollowed
			return nil
		}

		if theirs != nil {
			if err := tx.Follows.SetFriend(ctx, theirs.ID, true); err != nil {
				return err
			}
		}
		if err := tx.Follows.Create(ctx, &model.UserFollow{
			UserID:   actor.ID,
			TargetID: targetID,
			Friend:   theirs != nil,
		}); err != nil {
			return err
		}
		notice := &model.Inbox{
			UserID: targetID,
			Type:   "follow",
			Header: "New follower",
			Text:   fmt.Sprintf("%s started following you", actor.Name),
		}
		if err := tx.Inbox.Create(ctx, notice); err != nil {
			return err
		}
		res = Followed
		return nil
	})
	if err != nil {
		return "", apperr.StoreFault(err)
	}
	return res, nil
}
