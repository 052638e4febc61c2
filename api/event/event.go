package event

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

func (h *Handlers) list(w http.ResponseWriter, r *http.Request) {
	es, err := h.stores.Events.List(r.Context())
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, es)
}

func (h *Handlers) listByGroup(w http.ResponseWriter, r *http.Request) {
	id, err := api.URLUint(r, "groupID")
	if err != nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("Group does not exist"))
		return
	}
	g, err := h.stores.Groups.ByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if g == nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("Group does not exist"))
		return
	}
	es, err := h.stores.Events.ByGroup(r.Context(), g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, es)
}

func (h *Handlers) listByUser(w http.ResponseWriter, r *http.Request) {
	id, err := api.URLUint(r, "userID")
	if err != nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("User does not exist"))
		return
	}
	u, err := h.stores.Users.ByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if u == nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("User does not exist"))
		return
	}
	es, err := h.stores.Events.ByCreator(r.Context(), u.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, es)
}

func (h *Handlers) create(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	var body InCreateEvent
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	// The group reference lives in the body, so a dangling id is a
	// domain-rule failure rather than a routing miss.
	g, err := h.stores.Groups.ByID(r.Context(), body.GroupID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if g == nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("Group does not exist"))
		return
	}
	e := &model.Event{
		CreatedBy:   u.ID,
		GroupID:     g.ID,
		Name:        body.Name,
		Description: body.Description,
		Location:    body.Location,
		EventDate:   body.EventDate,
	}
	if err := h.stores.Events.Create(r.Context(), e); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/event", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/group/{groupID}", h.listByGroup)
		r.Get("/user/{userID}", h.listByUser)
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, secret []byte) *Handlers {
	return &Handlers{logger, stores, secret}
}
