package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/store"
)

// WithTarget loads the user named by the userID URL parameter into the
// request context as "target".
func WithTarget(logger *log.Logger, users store.UserStore) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseUint(chi.URLParam(r, "userID"), 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			u, err := users.ByID(r.Context(), uint(id))
			if err != nil {
				logger.Println(err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if u == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), "target", u)
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
