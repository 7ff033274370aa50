// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries a client-facing message while still matching ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError carries a client-facing message while still matching ErrNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RespondError maps domain errors to HTTP responses. Anything that is neither a
// validation nor a not-found error is reported as a 500 with its message.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		Error(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, messageOf(err))
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, messageOf(err))
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}

// messageOf prefers the innermost typed message so wrapping context stays server-side.
func messageOf(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var nerr *NotFoundError
	if errors.As(err, &nerr) {
		return nerr.Message
	}
	return err.Error()
}
