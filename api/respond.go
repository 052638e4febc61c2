// Package api holds the pieces shared by every handler package: the
// error-to-status mapping and small request helpers.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gearmeet/gearmeet-backend/apperr"
)

type errItem struct {
	Msg string `json:"msg"`
}

type errBody struct {
	Errors []errItem `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps the taxonomy onto HTTP. Conflicts report 400 like
// every other domain-rule failure; causes are logged, never exposed.
func WriteError(w http.ResponseWriter, logger *log.Logger, err error) {
	code := apperr.CodeOf(err)
	var status int
	switch code {
	case apperr.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case apperr.CodeForbidden:
		status = http.StatusForbidden
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeConflict, apperr.CodeInvalidRequest:
		status = http.StatusBadRequest
	default:
		logger.Println(err)
		status = http.StatusInternalServerError
	}
	WriteJSON(w, status, errBody{Errors: []errItem{{Msg: apperr.MessageOf(err)}}})
}

func WriteMsg(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, struct {
		Msg string `json:"msg"`
	}{msg})
}

// URLUint parses a numeric URL parameter.
func URLUint(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	return uint(id), err
}
