package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInvalidRequest  Code = "INVALID_REQUEST"
	CodeStoreFault      Code = "STORE_FAULT"
)

type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

func Wrap(code Code, msg string, cause error) error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

func Unauthenticated(msg string) error { return New(CodeUnauthenticated, msg) }
func Forbidden(msg string) error       { return New(CodeForbidden, msg) }
func NotFound(msg string) error        { return New(CodeNotFound, msg) }
func Conflict(msg string) error        { return New(CodeConflict, msg) }
func InvalidRequest(msg string) error  { return New(CodeInvalidRequest, msg) }

func StoreFault(cause error) error {
	return Wrap(CodeStoreFault, "Server Error", cause)
}

// CodeOf reports the taxonomy code of err. Errors outside the taxonomy
// are treated as store faults.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeStoreFault
}

// MessageOf reports the caller-visible message of err. Causes are never
// exposed.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "Server Error"
}
