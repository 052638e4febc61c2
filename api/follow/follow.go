package follow

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/api"
	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/follows"
	"github.com/gearmeet/gearmeet-backend/middleware"
	"github.com/gearmeet/gearmeet-backend/store"
)

type Handlers struct {
	logger     *log.Logger
	stores     *store.Stores
	reconciler *follows.Reconciler
	secret     []byte
}

func (h *Handlers) myFollowers(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	fs, err := h.stores.Follows.Followers(r.Context(), u.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, fs)
}

func (h *Handlers) myFollowing(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	fs, err := h.stores.Follows.Following(r.Context(), u.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, fs)
}

func (h *Handlers) followers(w http.ResponseWriter, r *http.Request) {
	id, err := api.URLUint(r, "userID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	fs, err := h.stores.Follows.Followers(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, fs)
}

func (h *Handlers) following(w http.ResponseWriter, r *http.Request) {
	id, err := api.URLUint(r, "userID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	fs, err := h.stores.Follows.Following(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, fs)
}

func (h *Handlers) toggle(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	id, err := api.URLUint(r, "userID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	res, err := h.reconciler.Toggle(r.Context(), u, id)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteMsg(w, http.StatusOK, string(res))
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/userFollow", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.With(middleware.NoCache).Get("/myFollowers", h.myFollowers)
		r.With(middleware.NoCache).Get("/myFollowing", h.myFollowing)
		r.Get("/followers/{userID}", h.followers)
		r.Get("/following/{userID}", h.following)
		r.Post("/{userID}", h.toggle)
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, reconciler *follows.Reconciler, secret []byte) *Handlers {
	return &Handlers{logger, stores, reconciler, secret}
}
