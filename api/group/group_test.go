package group

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/auth"
	"github.com/gearmeet/gearmeet-backend/authz"
	"github.com/gearmeet/gearmeet-backend/cascade"
	"github.com/gearmeet/gearmeet-backend/db"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/store"
)

var testSecret = []byte("test-secret")

func newTestRouter(t *testing.T) (*chi.Mux, *store.Stores) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))

	stores := store.New(gdb)
	logger := log.New(io.Discard, "", 0)
	engine := authz.NewEngine(stores.Groups, stores.Members)
	coordinator := cascade.NewCoordinator(stores, engine, logger)

	r := chi.NewRouter()
	NewHandlers(logger, stores, engine, coordinator, testSecret).SetupRoutes(r)
	return r, stores
}

func seedUser(t *testing.T, s *store.Stores, name string) (*model.User, string) {
	t.Helper()
	u := &model.User{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, s.Users.Create(context.Background(), u))
	token, err := auth.GenToken(testSecret, u.ID)
	require.NoError(t, err)
	return u, token
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGroupRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/group", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateGroupAndDuplicateName(t *testing.T) {
	r, s := newTestRouter(t)
	u, token := seedUser(t, s, "alice")

	private := false
	w := do(t, r, http.MethodPost, "/api/group", token, InCreateGroup{Name: "Miata Club", IsPrivate: &private})
	require.Equal(t, http.StatusCreated, w.Code)

	var g model.Group
	require.NoError(t, json.NewDecoder(w.Body).Decode(&g))
	assert.Equal(t, u.ID, g.CreatedBy)

	// The creator must come out an admin.
	m, err := s.Members.Find(context.Background(), u.ID, g.ID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, model.RoleAdmin, m.Role)

	w = do(t, r, http.MethodPost, "/api/group", token, InCreateGroup{Name: "Miata Club", IsPrivate: &private})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Group with name already exists")
}

func TestUpdateGroupRequiresAdmin(t *testing.T) {
	r, s := newTestRouter(t)
	_, adminToken := seedUser(t, s, "alice")
	_, outsiderToken := seedUser(t, s, "bob")

	private := false
	w := do(t, r, http.MethodPost, "/api/group", adminToken, InCreateGroup{Name: "Track Days", IsPrivate: &private})
	require.Equal(t, http.StatusCreated, w.Code)
	var g model.Group
	require.NoError(t, json.NewDecoder(w.Body).Decode(&g))

	w = do(t, r, http.MethodPut, "/api/group/1", outsiderToken, InUpdateGroup{Name: "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You do not have permission to edit this group")

	w = do(t, r, http.MethodPut, "/api/group/1", adminToken, InUpdateGroup{Name: "Track Days Weekly"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRenameGroupToTakenName(t *testing.T) {
	r, s := newTestRouter(t)
	_, token := seedUser(t, s, "alice")

	private := false
	require.Equal(t, http.StatusCreated,
		do(t, r, http.MethodPost, "/api/group", token, InCreateGroup{Name: "First", IsPrivate: &private}).Code)
	require.Equal(t, http.StatusCreated,
		do(t, r, http.MethodPost, "/api/group", token, InCreateGroup{Name: "Second", IsPrivate: &private}).Code)

	w := do(t, r, http.MethodPut, "/api/group/2", token, InUpdateGroup{Name: "First"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Group with new name already exists")

	// Re-submitting the current name is not a conflict.
	w = do(t, r, http.MethodPut, "/api/group/2", token, InUpdateGroup{Name: "Second"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteGroupDeniedForNonCreator(t *testing.T) {
	r, s := newTestRouter(t)
	_, creatorToken := seedUser(t, s, "alice")
	_, otherToken := seedUser(t, s, "bob")

	private := false
	w := do(t, r, http.MethodPost, "/api/group", creatorToken, InCreateGroup{Name: "Members Only", IsPrivate: &private})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodDelete, "/api/group/1", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodDelete, "/api/group/1", creatorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	g, err := s.Groups.ByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestGetMissingGroup(t *testing.T) {
	r, s := newTestRouter(t)
	_, token := seedUser(t, s, "alice")

	w := do(t, r, http.MethodGet, "/api/group/42", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
