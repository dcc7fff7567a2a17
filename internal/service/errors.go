package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of a payload.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is returned when credentials are missing, unknown
	// or wrong.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when valid credentials belong to a user
	// without admin privileges.
	ErrForbidden = errors.New("admin privileges required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
