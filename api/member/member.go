package member

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/api"
	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/middleware"
	"github.com/gearmeet/gearmeet-backend/store"
	"github.com/gearmeet/gearmeet-backend/validate"
)

type Handlers struct {
	logger *log.Logger
	stores *store.Stores
	secret []byte
}

func (h *Handlers) join(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)

	m, err := h.stores.Members.Find(r.Context(), u.ID, g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if m != nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("already joined"))
		return
	}
	m = &model.GroupMember{
		UserID:   u.ID,
		GroupID:  g.ID,
		IsMember: true,
		Role:     model.RoleMember,
	}
	if err := h.stores.Members.Create(r.Context(), m); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handlers) leave(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)

	m, err := h.stores.Members.Find(r.Context(), u.ID, g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if m == nil {
		api.WriteError(w, h.logger, apperr.NotFound("Membership does not exist"))
		return
	}
	if err := h.stores.Members.Delete(r.Context(), m.ID); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteMsg(w, http.StatusOK, "Group Left")
}

func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	g := r.Context().Value("group").(*model.Group)
	ms, err := h.stores.Members.ListByGroup(r.Context(), g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, ms)
}

func (h *Handlers) setRole(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)
	t := r.Context().Value("target").(*model.User)

	var body InSetRole
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	isAdmin, err := h.stores.Members.IsAdmin(r.Context(), u.ID, g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if !isAdmin {
		api.WriteError(w, h.logger, apperr.Forbidden("You do not have permission to manage this group"))
		return
	}
	m, err := h.stores.Members.Find(r.Context(), t.ID, g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if m == nil {
		api.WriteError(w, h.logger, apperr.NotFound("Membership does not exist"))
		return
	}
	if err := h.stores.Members.SetRole(r.Context(), m.ID, *body.Role); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	m.Role = *body.Role
	api.WriteJSON(w, http.StatusOK, m)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/groupMember", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithGroup(h.logger, h.stores.Groups))
			r.Get("/{groupID}", h.list)
			r.Post("/{groupID}", h.join)
			r.Delete("/{groupID}", h.leave)
			r.With(middleware.WithTarget(h.logger, h.stores.Users)).
				Put("/{groupID}/{userID}", h.setRole)
		})
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, secret []byte) *Handlers {
	return &Handlers{logger, stores, secret}
}
