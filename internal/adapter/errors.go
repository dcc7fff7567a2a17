package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("admin privileges required")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)

// APIError is a failure reported by the server, either through a non-2xx
// status or through the errors envelope of a 200 response.
type APIError struct {
	StatusCode int
	Messages   []string

	kind error
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

func (e *APIError) Unwrap() error {
	return e.kind
}
