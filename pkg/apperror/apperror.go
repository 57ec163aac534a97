// Package apperror defines the typed error taxonomy shared by all clinic
// services: validation failures, invalid state transitions, and missing
// entities. Handlers map these to HTTP status codes with HTTPStatus.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
)

// Error carries a sentinel category plus a human-readable message.
type Error struct {
	Err     error  `json:"-"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports bad input shape or range (negative payment, overpayment,
// missing required fields). Callers handle it by re-prompting, never retrying.
func Validation(format string, args ...interface{}) *Error {
	return &Error{
		Err:     ErrValidation,
		Message: fmt.Sprintf(format, args...),
		Code:    "VALIDATION",
	}
}

// InvalidState reports an operation against an entity in a terminal or
// incompatible state, e.g. paying a cancelled invoice.
func InvalidState(format string, args ...interface{}) *Error {
	return &Error{
		Err:     ErrInvalidState,
		Message: fmt.Sprintf(format, args...),
		Code:    "INVALID_STATE",
	}
}

// NotFound reports a lookup of an id that does not exist in a catalog or store.
func NotFound(resource, id string) *Error {
	return &Error{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Code:    "NOT_FOUND",
	}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsInvalidState reports whether err is an invalid-state error.
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// HTTPStatus maps an error to the HTTP status a handler should return.
// Unrecognized errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
