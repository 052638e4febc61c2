package message

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

func (h *Handlers) send(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	var body InSendMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	for _, tid := range body.Targets {
		t, err := h.stores.Users.ByID(r.Context(), tid)
		if err != nil {
			api.WriteError(w, h.logger, apperr.StoreFault(err))
			return
		}
		if t == nil {
			api.WriteError(w, h.logger, apperr.InvalidRequest("Target user does not exist"))
			return
		}
	}

	// One delivery row per recipient, all or none.
	msgs := make([]model.UserMessage, 0, len(body.Targets))
	err := h.stores.Transact(r.Context(), func(tx *store.Stores) error {
		for _, tid := range body.Targets {
			m := model.UserMessage{
				UserID:   u.ID,
				TargetID: tid,
				Text:     body.Text,
				Photos:   body.Photos,
			}
			if err := tx.Messages.Create(r.Context(), &m); err != nil {
				return err
			}
			msgs = append(msgs, m)
		}
		return nil
	})
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, msgs)
}

func (h *Handlers) conversation(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	t := r.Context().Value("target").(*model.User)
	ms, err := h.stores.Messages.Conversation(r.Context(), u.ID, t.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, ms)
}

func (h *Handlers) inbox(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	ns, err := h.stores.Inbox.ByUser(r.Context(), u.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, ns)
}

func (h *Handlers) markRead(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	id, err := api.URLUint(r, "inboxID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	n, err := h.stores.Inbox.MarkRead(r.Context(), id, u.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if n == 0 {
		api.WriteError(w, h.logger, apperr.NotFound("Inbox entry does not exist"))
		return
	}
	api.WriteMsg(w, http.StatusOK, "Marked Read")
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/userMessage", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Post("/", h.send)
		r.With(middleware.WithTarget(h.logger, h.stores.Users)).Get("/{userID}", h.conversation)
	})
	r.Route("/api/inbox", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.With(middleware.NoCache).Get("/", h.inbox)
		r.Put("/read/{inboxID}", h.markRead)
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, secret []byte) *Handlers {
	return &Handlers{logger, stores, secret}
}
