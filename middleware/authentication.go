package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gearmeet/gearmeet-backend/auth"
	"github.com/gearmeet/gearmeet-backend/store"
)

func writeMsg(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Msg string `json:"msg"`
	}{msg})
}

// Authenticator rejects any request without a valid bearer token whose
// subject still exists. Handlers behind it can rely on the "user"
// context value.
func Authenticator(logger *log.Logger, secret []byte, users store.UserStore) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == r.Header.Get("Authorization") {
				writeMsg(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}
			uid, err := auth.VerifyToken(secret, raw)
			if err != nil {
				writeMsg(w, http.StatusUnauthorized, "Token is not valid")
				return
			}
			u, err := users.ByID(r.Context(), uid)
			if err != nil {
				logger.Println(err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if u == nil {
				// Valid signature, but the subject has been deleted.
				writeMsg(w, http.StatusUnauthorized, "Current user not valid, authorization denied")
				return
			}
			ctx := context.WithValue(r.Context(), "user", u)
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
