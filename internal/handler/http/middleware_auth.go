package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/service"
	"github.com/MKhiriev/go-staffing/internal/utils"
	"github.com/MKhiriev/go-staffing/models"
)

// PrincipalField is the log field naming the authenticated user of a request.
const PrincipalField = "principal"

// adminOnly is an HTTP middleware that admits only admin principals.
//
// Credentials come from an "Authorization: Basic" header and are checked by
// [service.AuthService.Authenticate]. The middleware answers:
//   - 401 with a WWW-Authenticate challenge when the header is missing or
//     malformed, the user is unknown or the password is wrong;
//   - 403 without a challenge when the credentials belong to a non-admin;
//   - 500 when the user lookup itself fails.
//
// On success the principal is stored in the request context under
// [utils.PrincipalCtxKey] and added to the request logger.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		credentials, err := basicCredentials(r)
		if err != nil {
			log.Warn().Err(err).Msg("authentication rejected")
			h.challenge(w)
			return
		}

		principal, err := h.services.AuthService.Authenticate(ctx, credentials)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthenticated):
				h.challenge(w)
			case errors.Is(err, service.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
			default:
				log.Err(err).Msg("error occurred during authentication")
				utils.WriteErrors(w, http.StatusInternalServerError, internalErrorMessage)
			}
			return
		}

		l := log.With().
			Str(PrincipalField, principal.Name).
			Str("principal_id", principal.ID.String()).
			Logger()
		ctx = utils.WithPrincipal(l.WithContext(ctx), principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// challenge answers 401 and asks the client for Basic credentials.
func (h *Handler) challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", h.realm))
	w.WriteHeader(http.StatusUnauthorized)
}

// basicCredentials extracts the username/password pair of a Basic
// "Authorization" header.
func basicCredentials(r *http.Request) (models.Credentials, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return models.Credentials{}, ErrEmptyAuthorizationHeader
	}

	name, password, ok := r.BasicAuth()
	if !ok {
		return models.Credentials{}, ErrInvalidAuthorizationHeader
	}

	return models.Credentials{Name: name, Password: password}, nil
}
