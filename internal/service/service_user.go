package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/crypto"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// CreateUser derives the stored form of the password (if any), persists the
// user and echoes the submitted password back to the caller.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	submitted := user.Password
	if submitted != "" {
		stored, err := s.hasher.Hash(submitted)
		if err != nil {
			log.Err(err).Str("name", user.Name).Msg("password derivation failed")
			return models.User{}, fmt.Errorf("password derivation failed: %w", err)
		}
		user.Password = stored
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	created.Password = submitted
	log.Info().Str("user_id", created.ID.String()).Bool("is_admin", created.IsAdmin).Msg("user created")

	return created, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, models.UserFilter{ID: id})
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Public(), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	for i := range users {
		users[i] = users[i].Public()
	}

	return users, nil
}

// EnsureAdmin leaves an existing user with the same name untouched, even if
// it is not an admin.
func (s *userService) EnsureAdmin(ctx context.Context, name, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	existing, err := s.userRepository.GetUser(ctx, models.UserFilter{Name: name})
	switch {
	case err == nil:
		if !existing.IsAdmin {
			log.Warn().Str("name", name).Msg("bootstrap admin name belongs to a non-admin user")
		}
		return existing.Public(), nil
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	created, err := s.CreateUser(ctx, models.User{Name: name, Password: password, IsAdmin: true})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			// created concurrently by another instance
			return s.EnsureAdmin(ctx, name, password)
		}
		return models.User{}, err
	}

	log.Info().Str("name", name).Msg("bootstrap admin created")
	return created.Public(), nil
}
