package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/models"
)

type assignmentService struct {
	assignmentRepository store.AssignmentRepository
	now                  func() time.Time
	logger               *logger.Logger
}

func NewAssignmentService(assignmentRepository store.AssignmentRepository, logger *logger.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		now:                  time.Now,
		logger:               logger,
	}
}

func (s *assignmentService) UpsertAssignment(ctx context.Context, upsert models.AssignmentUpsert) (models.Assignment, error) {
	assignment := models.Assignment{Ends: upsert.Ends}
	if upsert.UserID != nil {
		assignment.UserID = *upsert.UserID
	}
	if upsert.ProjectID != nil {
		assignment.ProjectID = *upsert.ProjectID
	}

	if upsert.Begins != nil {
		assignment.Begins = *upsert.Begins
	} else {
		assignment.Begins = models.NewDate(s.now())
	}

	stored, err := s.assignmentRepository.UpsertAssignment(ctx, assignment)
	if err != nil {
		return models.Assignment{}, fmt.Errorf("assignment upsert ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("assignment_id", stored.ID.String()).
		Str("begins", stored.Begins.String()).
		Msg("assignment stored")

	return stored, nil
}

func (s *assignmentService) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepository.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("assignment listing failed: %w", err)
	}
	return assignments, nil
}
