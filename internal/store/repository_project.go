package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/models"
)

type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a PostgreSQL-backed [ProjectRepository].
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

var (
	createProjectErrors = errorRules{uniqueViolation: ErrProjectAlreadyExists}
	getProjectErrors    = errorRules{noRows: ErrProjectNotFound}
)

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProjectQuery(project)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return createProjectErrors.translate(tx.QueryRowContext(ctx, query, args...).Scan(&project.ID))
	})
	if err != nil {
		logStoreError(log, err).
			Str("func", "*projectRepository.CreateProject").
			Str("name", project.Name).
			Msg("failed to create project")
		return models.Project{}, err
	}

	return project, nil
}

func (r *projectRepository) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProjectQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var project models.Project
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return getProjectErrors.translate(tx.QueryRowContext(ctx, query, args...).Scan(&project.ID, &project.Name))
	})
	if err != nil {
		logStoreError(log, err).
			Str("func", "*projectRepository.GetProject").
			Str("project_id", id.String()).
			Msg("failed to get project")
		return models.Project{}, err
	}

	return project, nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProjectsQuery()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	projects := make([]models.Project, 0)
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		rows, queryErr := tx.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var project models.Project
			if scanErr := rows.Scan(&project.ID, &project.Name); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			projects = append(projects, project)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to list projects")
		return nil, err
	}

	return projects, nil
}
