package post

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

func (h *Handlers) createPost(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	var body InCreatePost
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	if body.CarID != nil {
		car, err := h.stores.Cars.ByID(r.Context(), *body.CarID)
		if err != nil {
			api.WriteError(w, h.logger, apperr.StoreFault(err))
			return
		}
		if car == nil || car.UserID != u.ID {
			api.WriteError(w, h.logger, apperr.InvalidRequest("Car does not exist"))
			return
		}
	}
	p := &model.UserPost{
		UserID:   u.ID,
		CarID:    body.CarID,
		Location: body.Location,
		Text:     body.Text,
		Photos:   body.Photos,
	}
	if err := h.stores.Posts.CreatePost(r.Context(), p); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handlers) getPost(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

func (h *Handlers) listByUser(w http.ResponseWriter, r *http.Request) {
	t := r.Context().Value("target").(*model.User)
	ps, err := h.stores.Posts.PostsByUser(r.Context(), t.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, ps)
}

func (h *Handlers) deletePost(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	if p.UserID != u.ID {
		api.WriteError(w, h.logger, apperr.Forbidden("You do not have permission to delete this post"))
		return
	}
	if err := h.stores.Posts.DeletePost(r.Context(), p.ID); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteMsg(w, http.StatusOK, "Post Deleted")
}

func (h *Handlers) likePost(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	p.Likes = model.ToggleLike(p.Likes, u.ID)
	if err := h.stores.Posts.UpdatePost(r.Context(), p); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

func (h *Handlers) createComment(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	var body InCreateComment
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	c := &model.UserComment{
		UserID: u.ID,
		PostID: p.ID,
		Text:   body.Text,
		Photos: body.Photos,
	}
	if err := h.stores.Posts.CreateComment(r.Context(), c); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handlers) listComments(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	cs, err := h.stores.Posts.CommentsByPost(r.Context(), p.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, cs)
}

func (h *Handlers) deleteComment(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value("user").(*model.User)
	id, err := api.URLUint(r, "commentID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	c, err := h.stores.Posts.CommentByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	if c == nil {
		api.WriteError(w, h.logger, apperr.NotFound("Comment does not exist"))
		return
	}
	if c.UserID != u.ID {
		api.WriteError(w, h.logger, apperr.Forbidden("You do not have permission to delete this comment"))
		return
	}
	if err := h.stores.Posts.DeleteComment(r.Context(), c.ID); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteMsg(w, http.StatusOK, "Comment Deleted")
}

func (h *Handlers) loadPost(w http.ResponseWriter, r *http.Request) (*model.UserPost, bool) {
	id, err := api.URLUint(r, "postID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	p, err := h.stores.Posts.PostByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return nil, false
	}
	if p == nil {
		api.WriteError(w, h.logger, apperr.NotFound("Post does not exist"))
		return nil, false
	}
	return p, true
}

func (h *Handlers) SetupRoutes(r *chi.Mux) {
	r.Route("/api/userPost", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Post("/", h.createPost)
		r.Get("/{postID}", h.getPost)
		r.Delete("/{postID}", h.deletePost)
		r.Put("/like/{postID}", h.likePost)
		r.With(middleware.WithTarget(h.logger, h.stores.Users)).Get("/user/{userID}", h.listByUser)
	})
	r.Route("/api/comment", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Post("/{postID}", h.createComment)
		r.Get("/{postID}", h.listComments)
		r.Delete("/id/{commentID}", h.deleteComment)
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, secret []byte) *Handlers {
	return &Handlers{logger, stores, secret}
}
