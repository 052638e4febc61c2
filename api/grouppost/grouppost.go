package grouppost

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

// requireMember ends the request when the user holds no membership in
// the group.
func (h *Handlers) requireMember(w http.ResponseWriter, r *http.Request) bool {
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)
	m, err := h.stores.Members.Find(r.Context(), u.ID, g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return false
	}
	if m == nil || !m.IsMember {
		api.WriteError(w, h.logger, apperr.Forbidden("You must be a member of this group"))
		return false
	}
	return true
}

func (h *Handlers) createPost(w http.ResponseWriter, r *http.Request) {
	if !h.requireMember(w, r) {
		return
	}
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)

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
	p := &model.GroupPost{
		UserID:   u.ID,
		GroupID:  g.ID,
		CarID:    body.CarID,
		Location: body.Location,
		Text:     body.Text,
		Photos:   body.Photos,
	}
	if err := h.stores.GroupFeed.CreatePost(r.Context(), p); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handlers) listPosts(w http.ResponseWriter, r *http.Request) {
	g := r.Context().Value("group").(*model.Group)
	ps, err := h.stores.GroupFeed.PostsByGroup(r.Context(), g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, ps)
}

func (h *Handlers) likePost(w http.ResponseWriter, r *http.Request) {
	if !h.requireMember(w, r) {
		return
	}
	u := r.Context().Value("user").(*model.User)
	p, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	p.Likes = model.ToggleLike(p.Likes, u.ID)
	if err := h.stores.GroupFeed.UpdatePost(r.Context(), p); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, p)
}

func (h *Handlers) createComment(w http.ResponseWriter, r *http.Request) {
	if !h.requireMember(w, r) {
		return
	}
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)
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
	c := &model.GroupComment{
		UserID:  u.ID,
		GroupID: g.ID,
		PostID:  p.ID,
		Text:    body.Text,
		Photos:  body.Photos,
	}
	if err := h.stores.GroupFeed.CreateComment(r.Context(), c); err != nil {
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
	cs, err := h.stores.GroupFeed.CommentsByPost(r.Context(), p.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, cs)
}

func (h *Handlers) createMessage(w http.ResponseWriter, r *http.Request) {
	if !h.requireMember(w, r) {
		return
	}
	u := r.Context().Value("user").(*model.User)
	g := r.Context().Value("group").(*model.Group)

	var body InCreateMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&body); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}
	m := &model.GroupMessage{
		UserID:  u.ID,
		GroupID: g.ID,
		Text:    body.Text,
		Photos:  body.Photos,
	}
	if err := h.stores.GroupFeed.CreateMessage(r.Context(), m); err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handlers) listMessages(w http.ResponseWriter, r *http.Request) {
	if !h.requireMember(w, r) {
		return
	}
	g := r.Context().Value("group").(*model.Group)
	ms, err := h.stores.GroupFeed.MessagesByGroup(r.Context(), g.ID)
	if err != nil {
		api.WriteError(w, h.logger, apperr.StoreFault(err))
		return
	}
	api.WriteJSON(w, http.StatusOK, ms)
}

func (h *Handlers) loadPost(w http.ResponseWriter, r *http.Request) (*model.GroupPost, bool) {
	id, err := api.URLUint(r, "postID")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	p, err := h.stores.GroupFeed.PostByID(r.Context(), id)
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
	r.Route("/api/groupPost", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Use(middleware.WithGroup(h.logger, h.stores.Groups))
		r.Get("/{groupID}", h.listPosts)
		r.Post("/{groupID}", h.createPost)
		r.Put("/{groupID}/like/{postID}", h.likePost)
		r.Get("/{groupID}/comments/{postID}", h.listComments)
		r.Post("/{groupID}/comments/{postID}", h.createComment)
	})
	r.Route("/api/groupMessage", func(r chi.Router) {
		r.Use(middleware.Authenticator(h.logger, h.secret, h.stores.Users))
		r.Use(middleware.WithGroup(h.logger, h.stores.Groups))
		r.Get("/{groupID}", h.listMessages)
		r.Post("/{groupID}", h.createMessage)
	})
}

func NewHandlers(logger *log.Logger, stores *store.Stores, secret []byte) *Handlers {
	return &Handlers{logger, stores, secret}
}
