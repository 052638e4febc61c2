package event

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/auth"
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
	r := chi.NewRouter()
	NewHandlers(log.New(io.Discard, "", 0), stores, testSecret).SetupRoutes(r)
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

func TestCreateEventForMissingGroup(t *testing.T) {
	r, s := newTestRouter(t)
	_, token := seedUser(t, s, "alice")

	w := do(t, r, http.MethodPost, "/api/event", token, InCreateEvent{
		GroupID:   42,
		Name:      "Cars and Coffee",
		EventDate: time.Now().Add(48 * time.Hour),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Group does not exist")
}

func TestCreateEvent(t *testing.T) {
	r, s := newTestRouter(t)
	u, token := seedUser(t, s, "alice")

	g := &model.Group{CreatedBy: u.ID, Name: "Miata Club"}
	require.NoError(t, s.Groups.Create(context.Background(), g))

	when := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	w := do(t, r, http.MethodPost, "/api/event", token, InCreateEvent{
		GroupID:   g.ID,
		Name:      "Cars and Coffee",
		Location:  "Pier 7",
		EventDate: when,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var e model.Event
	require.NoError(t, json.NewDecoder(w.Body).Decode(&e))
	assert.Equal(t, u.ID, e.CreatedBy)
	assert.Equal(t, g.ID, e.GroupID)
	assert.True(t, when.Equal(e.EventDate))

	w = do(t, r, http.MethodGet, "/api/event", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var es []model.Event
	require.NoError(t, json.NewDecoder(w.Body).Decode(&es))
	assert.Len(t, es, 1)
}

func TestListEventsByMissingUser(t *testing.T) {
	r, s := newTestRouter(t)
	_, token := seedUser(t, s, "alice")

	w := do(t, r, http.MethodGet, "/api/event/user/99", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User does not exist")
}

func TestEventRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/event", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
