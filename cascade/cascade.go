// Package cascade owns referential integrity. The store enforces no
// foreign keys, so removing a user or a group means sweeping every
// record that names it, plus deciding replacement ownership for groups
// the departing user administered.
package cascade

import (
	"context"
	"log"

	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/authz"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/store"
)

type Coordinator struct {
	stores *store.Stores
	engine *authz.Engine
	logger *log.Logger
}

func NewCoordinator(s *store.Stores, e *authz.Engine, l *log.Logger) *Coordinator {
	return &Coordinator{stores: s, engine: e, logger: l}
}

// DeleteUser removes the user and everything attributed to them. For
// each group where the user holds an admin record: other admins mean
// no action; otherwise the earliest-created moderator is promoted to
// admin and becomes the recorded creator; with no moderator either,
// the group and all its memberships go too. The whole batch commits
// atomically.
func (c *Coordinator) DeleteUser(ctx context.Context, userID uint) error {
	err := c.stores.Transact(ctx, func(tx *store.Stores) error {
		adminships, err := tx.Members.AdminGroups(ctx, userID)
		if err != nil {
			return err
		}
		for _, m := range adminships {
			if err := c.resolveGroupOwnership(ctx, tx, m.GroupID, userID); err != nil {
				return err
			}
		}

		if err := tx.Users.Delete(ctx, userID); err != nil {
			return err
		}
		if err := tx.Posts.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.Follows.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.Messages.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.Cars.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.Events.DeleteByCreator(ctx, userID); err != nil {
			return err
		}
		if err := tx.Members.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.GroupFeed.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return tx.Inbox.DeleteByUser(ctx, userID)
	})
	if err != nil {
		return apperr.StoreFault(err)
	}
	return nil
}

func (c *Coordinator) resolveGroupOwnership(ctx context.Context, tx *store.Stores, groupID, departingID uint) error {
	others, err := tx.Members.OtherAdmins(ctx, groupID, departingID)
	if err != nil {
		return err
	}
	if len(others) > 0 {
		return nil
	}
	mod, err := tx.Members.EarliestModerator(ctx, groupID, departingID)
	if err != nil {
		return err
	}
	if mod != nil {
		if err := tx.Members.SetRole(ctx, mod.ID, model.RoleAdmin); err != nil {
			return err
		}
		return tx.Groups.SetCreator(ctx, groupID, mod.UserID)
	}
	// No successor left: the group goes with its last admin.
	if err := tx.Groups.Delete(ctx, groupID); err != nil {
		return err
	}
	return tx.Members.DeleteByGroup(ctx, groupID)
}

// DeleteGroup tears a group down on behalf of its creator. The group
// row and its comments, posts, messages, and memberships are removed
// in one transaction; their relative order does not matter.
func (c *Coordinator) DeleteGroup(ctx context.Context, actor *model.User, groupID uint) error {
	g, err := c.stores.Groups.ByID(ctx, groupID)
	if err != nil {
		return apperr.StoreFault(err)
	}
	if g == nil {
		return apperr.NotFound("Group does not exist")
	}
	if !c.engine.CanDeleteGroup(actor.ID, g) {
		return apperr.Forbidden("You do not have permission to delete this group")
	}
	err = c.stores.Transact(ctx, func(tx *store.Stores) error {
		if err := tx.Groups.Delete(ctx, g.ID); err != nil {
			return err
		}
		if err := tx.GroupFeed.DeleteByGroup(ctx, g.ID); err != nil {
			return err
		}
		return tx.Members.DeleteByGroup(ctx, g.ID)
	})
	if err != nil {
		return apperr.StoreFault(err)
	}
	return nil
}
