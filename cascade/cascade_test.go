package cascade

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/authz"
	"github.com/gearmeet/gearmeet-backend/db"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/store"
)

func newTestStores(t *testing.T) *store.Stores {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))
	return store.New(gdb)
}

func newCoordinator(s *store.Stores) *Coordinator {
	engine := authz.NewEngine(s.Groups, s.Members)
	return NewCoordinator(s, engine, log.New(io.Discard, "", 0))
}

func seedUser(t *testing.T, s *store.Stores, name string) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, s.Users.Create(context.Background(), u))
	return u
}

func seedGroup(t *testing.T, s *store.Stores, creator *model.User, name string) *model.Group {
	t.Helper()
	g := &model.Group{CreatedBy: creator.ID, Name: name}
	require.NoError(t, s.Groups.Create(context.Background(), g))
	require.NoError(t, s.Members.Create(context.Background(), &model.GroupMember{
		UserID: creator.ID, GroupID: g.ID, IsMember: true, Role: model.RoleAdmin,
	}))
	return g
}

func seedMember(t *testing.T, s *store.Stores, u *model.User, g *model.Group, role int, createdAt time.Time) *model.GroupMember {
	t.Helper()
	m := &model.GroupMember{UserID: u.ID, GroupID: g.ID, IsMember: true, Role: role}
	m.CreatedAt = createdAt
	require.NoError(t, s.Members.Create(context.Background(), m))
	return m
}

func TestDeleteUserWithoutAdminRoleLeavesGroupsAlone(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)
	admin := seedUser(t, s, "admin")
	plain := seedUser(t, s, "plain")
	g := seedGroup(t, s, admin, "Miata Club")
	seedMember(t, s, plain, g, model.RoleMember, time.Now())

	require.NoError(t, newCoordinator(s).DeleteUser(ctx, plain.ID))

	got, err := s.Groups.ByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, admin.ID, got.CreatedBy)

	m, err := s.Members.Find(ctx, plain.ID, g.ID)
	require.NoError(t, err)
	assert.Nil(t, m)

	u, err := s.Users.ByID(ctx, plain.ID)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestDeleteUserWithOtherAdminsKeepsGroup(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)
	a := seedUser(t, s, "alice")
	b := seedUser(t, s, "bob")
	g := seedGroup(t, s, a, "Track Days")
	seedMember(t, s, b, g, model.RoleAdmin, time.Now())

	require.NoError(t, newCoordinator(s).DeleteUser(ctx, a.ID))

	got, err := s.Groups.ByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	m, err := s.Members.Find(ctx, b.ID, g.ID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, model.RoleAdmin, m.Role)
}

func TestDeleteLastAdminPromotesEarliestModerator(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)
	a := seedUser(t, s, "alice")
	early := seedUser(t, s, "early")
	late := seedUser(t, s, "late")
	g := seedGroup(t, s, a, "Canyon Runs")
	seedMember(t, s, late, g, model.RoleModerator, time.Now())
	seedMember(t, s, early, g, model.RoleModerator, time.Now().Add(-time.Hour))

	require.NoError(t, newCoordinator(s).DeleteUser(ctx, a.ID))

	got, err := s.Groups.ByID(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, early.ID, got.CreatedBy)

	m, err := s.Members.Find(ctx, early.ID, g.ID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, model.RoleAdmin, m.Role)

	m, err = s.Members.Find(ctx, late.ID, g.ID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, model.RoleModerator, m.Role)
}

func TestDeleteLastAdminWithoutModeratorsRemovesGroup(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)
	a := seedUser(t, s, "alice")
	member := seedUser(t, s, "member")
	g := seedGroup(t, s, a, "Oil Changes")
	seedMember(t, s, member, g, model.RoleMember, time.Now())

	require.NoError(t, newCoordinator(s).DeleteUser(ctx, a.ID))

	got, err := s.Groups.ByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ms, err := s.Members.ListByGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestDeleteUserSweepsAttributedRecords(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)
	u := seedUser(t, s, "departing")
	other := seedUser(t, s, "other")

	require.NoError(t, s.Posts.CreatePost(ctx, &model.UserPost{UserID: u.ID, Text: "hi"}))
	require.NoError(t, s.Cars.Create(ctx, &model.Car{UserID: u.ID, Make: "Mazda", Model: "Miata", Trim: "Sport", Year: 1999}))
	require.NoError(t, s.Events.Create(ctx, &model.Event{CreatedBy: u.ID, Name: "Meet", EventDate: time.Now()}))
	require.NoError(t, s.Follows.Create(ctx, &model.UserFollow{UserID: u.ID, TargetID: other.ID}))
	require.NoError(t, s.Follows.Create(ctx, &model.UserFollow{UserID: other.ID, TargetID: u.ID}))
	require.NoError(t, s.Messages.Create(ctx, &model.UserMessage{UserID: u.ID, TargetID: other.ID, Text: "yo"}))
	require.NoError(t, s.Messages.Create(ctx, &model.UserMessage{UserID: other.ID, TargetID: u.ID, Text: "yo"}))
	require.NoError(t, s.Inbox.Create(ctx, &model.Inbox{UserID: u.ID, Type: "follow", Header: "h", Text: "t"}))

	require.NoError(t, newCoordinator(s).DeleteUser(ctx, u.ID))

	ps, err := s.Posts.PostsByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, ps)

	cs, err := s.Cars.ByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, cs)

	es, err := s.Events.ByCreator(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, es)

	fs, err := s.Follows.Following(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, fs)
	fs, err = s.Follows.Followers(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, fs)

	ms, err := s.Messages.Conversation(ctx, u.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, ms)

	ns, err := s.Inbox.ByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, ns)
}

func TestDeleteGroupRequiresCreator(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)
	a := seedUser(t, s, "alice")
	b := seedUser(t, s, "bob")
	g := seedGroup(t, s, a, "Members Only")

	err := newCoordinator(s).DeleteGroup(ctx, b, g.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeForbidden, apperr.CodeOf(err))

	got, err := s.Groups.ByID(ctx, g.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDeleteGroupCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)
	a := seedUser(t, s, "alice")
	g := seedGroup(t, s, a, "Going Away")

	require.NoError(t, s.GroupFeed.CreatePost(ctx, &model.GroupPost{UserID: a.ID, GroupID: g.ID, Text: "p"}))
	require.NoError(t, s.GroupFeed.CreateMessage(ctx, &model.GroupMessage{UserID: a.ID, GroupID: g.ID, Text: "m"}))

	require.NoError(t, newCoordinator(s).DeleteGroup(ctx, a, g.ID))

	got, err := s.Groups.ByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ps, err := s.GroupFeed.PostsByGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, ps)

	msgs, err := s.GroupFeed.MessagesByGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	ms, err := s.Members.ListByGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestDeleteMissingGroup(t *testing.T) {
	s := newTestStores(t)
	a := seedUser(t, s, "alice")
	err := newCoordinator(s).DeleteGroup(context.Background(), a, 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
