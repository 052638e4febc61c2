package group

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/api"
	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/authz"
	"github.com/gearmeet/gearmeet-backend/cascade"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/middleware"
	"github.com/gearmeet/gearmeet-backend/store"
	"github.com/gearmeet/gearmeet-backend/validate"
)

type Handlers struct {
	logger      *log.Logger
	stores      *store.Stores
	engine      *authz.Engine
	coordinator *cascade.Coordinator
	secret      []byte
}

func (h *Handlers) listGroups(w http.ResponseWriter, r *http.Request) {
	grps, err := h.stores.Groups.List(r.Context())
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, grps)
}

func (h *Handlers) getGroup(w http.ResponseWriter, r *http.Request) {
	g := r.Context().Value("group").(*model.Group)
	api.WriteJSON(w, http.StatusOK, g)
}

func (h *Handlers) createGroup(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	var body InCreateGroup
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	g := &model.Group{
		CreatedBy:   u.ID,
		Name:        body.Name,
		IsPrivate:   *body.IsPrivate,
		Description: body.Description,
		Location:    body.Location,
	}
	// Name check, group row, and the creator's admin membership commit
	// together.
	err := h.stores.Transact(r.Context(), func(tx *store.Stores) error {
		existing, err := tx.Groups.ByName(r.Context(), body.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.InvalidRequest("Group with name already exists")
		}
		if err := tx.Groups.Create(r.Context(), g); err != nil {
			return err
		}
		return tx.Members.Create(r.Context(), &model.GroupMember{
			UserID:   u.ID,
			GroupID:  g.ID,
			IsMember: true,
			Role:     model.RoleAdmin,
		})
	})
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, g)
}

func (h *Handlers) updateGroup(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)

	var body InUpdateGroup
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	ok, err := h.engine.CanEditGroup(r.Context(), u.ID, g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if !ok {
		api.WriteError(w, h.logger, apperr.Forbidden("You do not have permission to edit this group"))
		return
	}

	err = h.stores.Transact(r.Context(), func(tx *store.Stores) error {
		engine := authz.NewEngine(tx.Groups, tx.Members)
		if body.Name != g.Name {
			free, err := engine.NameAvailable(r.Context(), body.Name, g.ID)
			if err != nil {
				return err
			}
			if !free {
				return apperr.InvalidRequest("Group with new name already exists")
			}
		}
		g.Name = body.Name
		if body.IsPrivate != nil {
			g.IsPrivate = *body.IsPrivate
		}
		if body.Description != "" {
			g.Description = body.Description
		}
		if body.Location != "" {
			g.Location = body.Location
		}
		return tx.Groups.Update(r.Context(), g)
	})
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, g)
}

func (h *Handlers) deleteGroup(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)
	if err := h.coordinator.DeleteGroup(r.Context(), u, g.ID); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	api.WriteMsg(w, http.StatusOK, "Group Deleted")
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/group", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Get("/", h.listGroups)
		r.Post("/", h.createGroup)
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithGroup(h.logger, h.stores.Groups))
			r.Get("/{groupID}", h.getGroup)
			r.Put("/{groupID}", h.updateGroup)
			r.Delete("/{groupID}", h.deleteGroup)
		})
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, engine *authz.Engine, coordinator *cascade.Coordinator, secret []byte) *Handlers {
	return &Handlers{logger, stores, engine, coordinator, secret}
}
