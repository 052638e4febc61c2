package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gearmeet/gearmeet-backend/api"
	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/auth"
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

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var body InRegister
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	addr, err := mail.ParseAddress(body.Email)
	if err != nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("Please include a valid email"))
		return
	}
	body.Email = addr.Address
	if body.Password != body.PasswordConfirm {
		api.WriteError(w, h.logger, apperr.InvalidRequest("Passwords do not match"))
		return
	}

	passBytes, err := bcrypt.GenerateFromPassword([]byte(body.Password), 14)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	u := &model.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(passBytes),
	}
	// Check-then-insert runs in one transaction to close the duplicate
	// registration race.
	err = h.stores.Transact(r.Context(), func(tx *store.Stores) error {
		exists, err := tx.Users.ExistsEmailOrName(r.Context(), body.Email, body.Name)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("User already exists")
		}
		return tx.Users.Create(r.Context(), u)
	})
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	token, err := auth.GenToken(h.secret, u.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, OutToken{Token: token})
}

func (h *Handlers) signin(w http.ResponseWriter, r *http.Request) {
	var body InSignin
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	u, err := h.stores.Users.ByEmail(r.Context(), body.Email)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(body.Password)) != nil {
		api.WriteError(w, h.logger, apperr.Unauthenticated("Invalid credentials"))
		return
	}

	now := time.Now()
	u.LastLogin = &now
	if err := h.stores.Users.Update(r.Context(), u); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}

	token, err := auth.GenToken(h.secret, u.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, OutToken{Token: token})
}

func (h *Handlers) user(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	api.WriteJSON(w, http.StatusOK, u)
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/signin", h.signin)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
			r.With(middleware.NoCache).Get("/user", h.user)
		})
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, secret []byte) *Handlers {
	return &Handlers{logger, stores, secret}
}
