package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

var (
	createUserErrors = errorRules{uniqueViolation: ErrUserAlreadyExists}
	getUserErrors    = errorRules{noRows: ErrUserNotFound}
)

// CreateUser inserts user and returns it with the server-assigned ID.
// user.Password must already hold the stored form of the password; an empty
// password is persisted as NULL.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return createUserErrors.translate(tx.QueryRowContext(ctx, query, args...).Scan(&user.ID))
	})
	if err != nil {
		logStoreError(log, err).
			Str("func", "*userRepository.CreateUser").
			Str("name", user.Name).
			Msg("failed to create user")
		return models.User{}, err
	}

	return user, nil
}

// GetUser returns the single user selected by filter, stored password
// derivation included.
//
// A filter that does not set exactly one key yields [ErrUserNotFound]
// without touching the database.
func (r *userRepository) GetUser(ctx context.Context, filter models.UserFilter) (models.User, error) {
	log := logger.FromContext(ctx)

	if !filter.IsValid() {
		return models.User{}, ErrUserNotFound
	}

	query, args, err := buildSelectUserQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var password sql.NullString
		scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &password, &user.IsAdmin)
		if scanErr != nil {
			return getUserErrors.translate(scanErr)
		}
		user.Password = password.String
		return nil
	})
	if err != nil {
		logStoreError(log, err).Str("func", "*userRepository.GetUser").Msg("failed to get user")
		return models.User{}, err
	}

	return user, nil
}

// ListUsers returns every user without credential material.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users := make([]models.User, 0)
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, queryErr := tx.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var user models.User
			if scanErr := rows.Scan(&user.ID, &user.Name, &user.IsAdmin); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			users = append(users, user)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to list users")
		return nil, err
	}

	log.Debug().Str("func", "*userRepository.ListUsers").Int("count", len(users)).Msg("users listed")
	return users, nil
}
