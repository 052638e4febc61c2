package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/store"
)

// WithGroup loads the group named by the groupID URL parameter into the
// request context, or ends the request with 404.
func WithGroup(logger *log.Logger, groups store.GroupStore) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseUint(chi.URLParam(r, "groupID"), 10, 64)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			g, err := groups.ByID(r.Context(), uint(id))
			if err != nil {
				logger.Println(err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if g == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), "group", g)
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
