// Package validate checks request body shape before handler logic runs.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gearmeet/gearmeet-backend/apperr"
)

var v = validator.New()

// Struct translates the first shape violation into an InvalidRequest
// error with a field-level message.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return apperr.InvalidRequest("invalid input")
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return apperr.InvalidRequest(fmt.Sprintf("%s is required", fe.Field()))
	case "email":
		return apperr.InvalidRequest("Please include a valid email")
	default:
		return apperr.InvalidRequest(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
