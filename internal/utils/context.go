// Package utils provides small helpers shared by the transport layers:
// the request principal context key, JSON envelope writers and the resty
// based HTTP client used by the Go SDK.
package utils

import (
	"context"

	"github.com/MKhiriev/go-staffing/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated user of a request
// is stored in its context.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying user as the request principal.
// Credential material is stripped before storing.
func WithPrincipal(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, user.Public())
}

// GetPrincipalFromContext retrieves the request principal.
//
// ok is false when the request was not authenticated.
func GetPrincipalFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(PrincipalCtxKey).(models.User)
	return user, ok
}
