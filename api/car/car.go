package car

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/api"
	"github.com/gearmeet/gearmeet-backend/apperr"
	"github.com/gearmeet/gearmeet-backend/db/model"
	"github.com/gearmeet/gearmeet-backend/middleware"
	"github.com/gearmeet/gearmeet-backend/storage"
	"github.com/gearmeet/gearmeet-backend/store"
	"github.com/gearmeet/gearmeet-backend/validate"
)

type Handlers struct {
	logger *log.Logger
	stores *store.Stores
	secret []byte
}

func (h *Handlers) createCar(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	var body InCreateCar
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	c := &model.Car{
		UserID: u.ID,
		Make:   body.Make,
		Model:  body.Model,
		Trim:   body.Trim,
		Year:   *body.Year,
		Alias:  body.Alias,
	}
	if err := h.stores.Cars.Create(r.Context(), c); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handlers) getCar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadCar(w, r)
	if !ok {
		return
	}
	api.WriteJSON(w, http.StatusOK, c)
}

func (h *Handlers) listByUser(w http.ResponseWriter, r *http.Request) {
	t := r.Context().Value("target").(*model.User)
	cs, err := h.stores.Cars.ByUser(r.Context(), t.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, cs)
}

func (h *Handlers) deleteCar(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	c, ok := h.loadCar(w, r)
	if !ok {
		return
	}
	if c.UserID != u.ID {
		api.WriteError(w, h.logger, apperr.Forbidden("You do not have permission to delete this car"))
		return
	}
	if err := h.stores.Cars.Delete(r.Context(), c.ID); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteMsg(w, http.StatusOK, "Car Deleted")
}

func (h *Handlers) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	c, ok := h.loadCar(w, r)
	if !ok {
		return
	}
	if c.UserID != u.ID {
		api.WriteError(w, h.logger, apperr.Forbidden("You do not have permission to edit this car"))
		return
	}
	f, _, err := r.FormFile("image")
	if err != nil {
		api.WriteError(w, h.logger, apperr.InvalidRequest("image is required"))
		return
	}
	defer f.Close()
	url, err := storage.Upload(r.Context(), f)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	c.Avatar = url
	if err := h.stores.Cars.Update(r.Context(), c); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, c)
}

func (h *Handlers) loadCar(w http.ResponseWriter, r *http.Request) (*model.Car, bool) {
	id, err := api.URLUint(r, "carID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	c, err := h.stores.Cars.ByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return nil, false
	}
	if c == nil {
		api.WriteError(w, h.logger, apperr.NotFound("Car does not exist"))
		return nil, false
	}
	return c, true
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/car", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Post("/", h.createCar)
		r.Get("/{carID}", h.getCar)
		r.Delete("/{carID}", h.deleteCar)
		r.Post("/{carID}/avatar", h.uploadAvatar)
		r.With(middleware.WithTarget(h.logger, h.stores.Users)).Get("/user/{userID}", h.listByUser)
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, secret []byte) *Handlers {
	return &Handlers{logger, stores, secret}
}
