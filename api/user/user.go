package user

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/api"
	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/cascade"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/middleware"
	"github.com/gearmeet/gearmeet-backend/store"
)

type Handlers struct {
	logger      *log.Logger
	stores      *store.Stores
	coordinator *cascade.Coordinator
	secret      []byte
}

func (h *Handlers) getUser(w http.ResponseWriter, r *http.Request) {
	t := r.Context().Value("target").(*model.User)
	api.WriteJSON(w, http.StatusOK, t)
}

func (h *Handlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	var body InUpdateProfile
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if body.Avatar != nil {
		u.Avatar = *body.Avatar
	}
	if body.Bio != nil {
		u.Bio = *body.Bio
	}
	if body.Location != nil {
		u.Location = *body.Location
	}
	if body.Youtube != nil {
		u.Youtube = *body.Youtube
	}
	if body.Twitter != nil {
		u.Twitter = *body.Twitter
	}
	if body.Facebook != nil {
		u.Facebook = *body.Facebook
	}
	if body.Instagram != nil {
		u.Instagram = *body.Instagram
	}
	if err := h.stores.Users.Update(r.Context(), u); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, u)
}

func (h *Handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	if err := h.coordinator.DeleteUser(r.Context(), u.ID); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteMsg(w, http.StatusOK, "User Deleted")
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.With(middleware.WithTarget(h.logger, h.stores.Users)).Get("/{userID}", h.getUser)
		r.Put("/", h.updateProfile)
		r.Delete("/", h.deleteUser)
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, coordinator *cascade.Coordinator, secret []byte) *Handlers {
	return &Handlers{logger, stores, coordinator, secret}
}
