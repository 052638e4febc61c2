// Package authz answers who may mutate a group.
package authz

import (
	"context"

	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/store"
)

type Engine struct {
	groups  store.GroupStore
	members store.MemberStore
}

func NewEngine(groups store.GroupStore, members store.MemberStore) *Engine {
	return &Engine{groups: groups, members: members}
}

// CanEditGroup is true iff an admin membership record exists for the
// pair. Duplicate membership rows are tolerated: any admin record
// authorizes.
func (e *Engine) CanEditGroup(ctx context.Context, actorID, groupID uint) (bool, error) {
	return e.members.IsAdmin(ctx, actorID, groupID)
}

// CanDeleteGroup is true iff the actor is the group's recorded creator.
func (e *Engine) CanDeleteGroup(actorID uint, g *model.Group) bool {
	return g.CreatedBy == actorID
}

// NameAvailable reports whether name can be used by the group with id
// selfID. A group keeping its own current name stays valid.
func (e *Engine) NameAvailable(ctx context.Context, name string, selfID uint) (bool, error) {
	g, err := e.groups.ByName(ctx, name)
	if err != nil {
		return false, err
	}
	return g == nil || g.ID == selfID, nil
}
