package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	repo "craveconnect/internal/repository"
)

// HTTPError is the typed failure every usecase returns; handlers map Status
// straight onto the response.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func ValidationError(msg string) error { return NewHTTPError(http.StatusBadRequest, msg) }
func Unauthorized(msg string) error    { return NewHTTPError(http.StatusUnauthorized, msg) }
func Forbidden(msg string) error       { return NewHTTPError(http.StatusForbidden, msg) }
func NotFound(msg string) error        { return NewHTTPError(http.StatusNotFound, msg) }
func Conflict(msg string) error        { return NewHTTPError(http.StatusConflict, msg) }
func Timeout(msg string) error         { return NewHTTPError(http.StatusGatewayTimeout, msg) }
func Unavailable(msg string) error     { return NewHTTPError(http.StatusServiceUnavailable, msg) }
func Internal(msg string) error        { return NewHTTPError(http.StatusInternalServerError, msg) }

// fromRepo classifies a repository error. HTTPErrors pass through untouched.
func fromRepo(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, repo.ErrConflict):
		return Conflict("conflict")
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout("timeout")
	}
	return Internal("db error")
}
