package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/models"
)

type assignmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssignmentRepository constructs a PostgreSQL-backed
// [AssignmentRepository].
func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

var upsertAssignmentErrors = errorRules{foreignKeyViolation: ErrInvalidAssignmentReference}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// UpsertAssignment inserts the assignment or, when the (project_id, user_id)
// pair already exists, overwrites begins and ends of the existing row.
// The stored row is then read back with its user and project attached
// within the same transaction.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrInvalidAssignmentReference].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *assignmentRepository) UpsertAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	upsertQuery, upsertArgs, err := buildUpsertAssignmentQuery(assignment)
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.UpsertAssignment").Msg("failed to build upsert query")
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.Assignment
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var id uuid.UUID
		if scanErr := tx.QueryRowContext(ctx, upsertQuery, upsertArgs...).Scan(&id); scanErr != nil {
			return upsertAssignmentErrors.translate(scanErr)
		}

		selectQuery, selectArgs, buildErr := buildSelectAssignmentQuery(id)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		var scanErr error
		stored, scanErr = scanAssignment(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
		if scanErr != nil {
			return errorRules{}.translate(scanErr)
		}
		return nil
	})
	if err != nil {
		logStoreError(log, err).
			Str("func", "*assignmentRepository.UpsertAssignment").
			Str("user_id", assignment.UserID.String()).
			Str("project_id", assignment.ProjectID.String()).
			Msg("failed to upsert assignment")
		return models.Assignment{}, err
	}

	log.Debug().
		Str("func", "*assignmentRepository.UpsertAssignment").
		Str("assignment_id", stored.ID.String()).
		Msg("assignment stored")

	return stored, nil
}

// ListAssignments returns every assignment with its user and project attached
// using a single join query.
func (r *assignmentRepository) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAssignmentsQuery()
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.ListAssignments").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	assignments := make([]models.Assignment, 0)
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, queryErr := tx.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			assignment, scanErr := scanAssignment(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			assignments = append(assignments, assignment)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*assignmentRepository.ListAssignments").Msg("failed to list assignments")
		return nil, err
	}

	return assignments, nil
}

// scanAssignment reads one row shaped by [selectAssignments].
func scanAssignment(row rowScanner) (models.Assignment, error) {
	var (
		assignment models.Assignment
		ends       sql.Null[models.Date]
		user       models.User
		project    models.Project
	)

	err := row.Scan(
		&assignment.ID, &assignment.UserID, &assignment.ProjectID, &assignment.Begins, &ends,
		&user.Name, &user.IsAdmin,
		&project.Name,
	)
	if err != nil {
		return models.Assignment{}, err
	}

	if ends.Valid {
		assignment.Ends = &ends.V
	}

	user.ID = assignment.UserID
	project.ID = assignment.ProjectID
	assignment.User = &user
	assignment.Project = &project

	return assignment, nil
}
