package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-staffing/internal/crypto"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/models"
)

// authService is the concrete implementation of AuthService.
// It looks users up by name and checks passwords against their stored
// Argon2id derivation.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// hasher verifies submitted passwords against stored derivations.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Authenticate resolves credentials to an admin principal.
//
// Steps:
//  1. Look the user up by name. An unknown name is ErrUnauthenticated after
//     a password check against [crypto.PlaceholderHash], so it takes as long
//     as a wrong password.
//  2. Compare the supplied name with the stored one and the supplied password
//     with the stored derivation, both in constant time. Any mismatch is
//     ErrUnauthenticated.
//  3. A user without the admin flag is ErrForbidden.
//
// The returned principal never carries credential material. Store failures
// other than "not found" are returned wrapped.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.GetUser(ctx, models.UserFilter{Name: credentials.Name})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(credentials.Password, crypto.PlaceholderHash)
			log.Warn().Str("name", credentials.Name).Msg("authentication failed: unknown user")
			return models.User{}, ErrUnauthenticated
		}
		log.Err(err).Str("name", credentials.Name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	nameMatches := subtle.ConstantTimeCompare([]byte(credentials.Name), []byte(foundUser.Name)) == 1
	stored := foundUser.Password
	if stored == "" {
		stored = crypto.PlaceholderHash
	}
	passwordMatches := a.hasher.Verify(credentials.Password, stored) && foundUser.Password != ""
	if !nameMatches || !passwordMatches {
		log.Warn().Str("name", credentials.Name).Msg("authentication failed: wrong credentials")
		return models.User{}, ErrUnauthenticated
	}

	if !foundUser.IsAdmin {
		log.Warn().Str("name", foundUser.Name).Msg("authorization failed: not an admin")
		return models.User{}, ErrForbidden
	}

	return foundUser.Public(), nil
}
