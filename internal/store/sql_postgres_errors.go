package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-staffing/internal/logger"
)

// errorRules maps driver-level outcomes of one statement to the domain
// sentinels the caller expects. A nil rule leaves the outcome unmapped.
type errorRules struct {
	noRows              error
	uniqueViolation     error
	foreignKeyViolation error
}

// translate converts err produced by executing or scanning a statement.
//
// Mapping:
//   - [sql.ErrNoRows]                  → rules.noRows
//   - PostgreSQL unique_violation      → rules.uniqueViolation
//   - PostgreSQL foreign_key_violation → rules.foreignKeyViolation
//   - anything else                    → wrapped [ErrExecutingQuery]
func (rules errorRules) translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) && rules.noRows != nil {
		return rules.noRows
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		if rules.uniqueViolation != nil {
			return rules.uniqueViolation
		}
	case pgerrcode.ForeignKeyViolation:
		if rules.foreignKeyViolation != nil {
			return rules.foreignKeyViolation
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// postgresError returns the SQLSTATE code carried by err, or an empty string
// when err does not originate from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// logStoreError starts a log event for a failed repository call. Outcomes
// with a domain meaning are expected during normal operation and logged as
// warnings.
func logStoreError(log *logger.Logger, err error) *zerolog.Event {
	if isDomainError(err) {
		return log.Warn().Err(err)
	}
	return log.Err(err)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		ErrUserNotFound,
		ErrUserAlreadyExists,
		ErrProjectNotFound,
		ErrProjectAlreadyExists,
		ErrInvalidAssignmentReference,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
