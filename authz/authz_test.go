package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Stores) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))
	s := store.New(gdb)
	return NewEngine(s.Groups, s.Members), s
}

func TestCanEditGroupRequiresAdminRecord(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	g := &model.Group{CreatedBy: 1, Name: "Miata Club"}
	require.NoError(t, s.Groups.Create(ctx, g))

	require.NoError(t, s.Members.Create(ctx, &model.GroupMember{UserID: 1, GroupID: g.ID, IsMember: true, Role: model.RoleAdmin}))
	require.NoError(t, s.Members.Create(ctx, &model.GroupMember{UserID: 2, GroupID: g.ID, IsMember: true, Role: model.RoleModerator}))

	ok, err := e.CanEditGroup(ctx, 1, g.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.CanEditGroup(ctx, 2, g.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.CanEditGroup(ctx, 3, g.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanDeleteGroupIsCreatorOnly(t *testing.T) {
	e, _ := newTestEngine(t)
	g := &model.Group{CreatedBy: 7, Name: "Owners"}
	assert.True(t, e.CanDeleteGroup(7, g))
	assert.False(t, e.CanDeleteGroup(8, g))
}

func TestNameAvailableExcludesSelf(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	g := &model.Group{CreatedBy: 1, Name: "Taken"}
	require.NoError(t, s.Groups.Create(ctx, g))

	free, err := e.NameAvailable(ctx, "Taken", g.ID)
	require.NoError(t, err)
	assert.True(t, free, "a group keeping its own name stays valid")

	free, err = e.NameAvailable(ctx, "Taken", g.ID+1)
	require.NoError(t, err)
	assert.False(t, free)

	free, err = e.NameAvailable(ctx, "Fresh", 0)
	require.NoError(t, err)
	assert.True(t, free)
}
