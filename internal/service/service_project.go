package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

func (s *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	created, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("project_id", created.ID.String()).Msg("project created")
	return created, nil
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	project, err := s.projectRepository.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepository.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("project listing failed: %w", err)
	}
	return projects, nil
}
