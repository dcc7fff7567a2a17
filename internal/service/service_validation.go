package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/validators"
	"github.com/MKhiriev/go-staffing/models"
)

// UserValidationService validates payloads before delegating to the wrapped
// UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldName, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) EnsureAdmin(ctx context.Context, name, password string) (models.User, error) {
	if err := v.validator.Validate(ctx, models.User{Name: name, Password: password}, validators.FieldName, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.EnsureAdmin(ctx, name, password)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// ProjectValidationService validates payloads before delegating to the
// wrapped ProjectService.
type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService(validator validators.Validator) ProjectServiceWrapper {
	return &ProjectValidationService{validator: validator}
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if err := v.validator.Validate(ctx, project, validators.FieldName); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProject(ctx, project)
}

func (v *ProjectValidationService) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	return v.inner.GetProject(ctx, id)
}

func (v *ProjectValidationService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return v.inner.ListProjects(ctx)
}

func (v *ProjectValidationService) Wrap(wrapped ProjectService) ProjectService {
	v.inner = wrapped
	return v
}

// AssignmentValidationService validates payloads before delegating to the
// wrapped AssignmentService.
type AssignmentValidationService struct {
	inner     AssignmentService
	validator validators.Validator
}

func NewAssignmentValidationService(validator validators.Validator) AssignmentServiceWrapper {
	return &AssignmentValidationService{validator: validator}
}

func (v *AssignmentValidationService) UpsertAssignment(ctx context.Context, upsert models.AssignmentUpsert) (models.Assignment, error) {
	if err := v.validator.Validate(ctx, upsert, validators.FieldUserID, validators.FieldProjectID); err != nil {
		return models.Assignment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpsertAssignment(ctx, upsert)
}

func (v *AssignmentValidationService) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return v.inner.ListAssignments(ctx)
}

func (v *AssignmentValidationService) Wrap(wrapped AssignmentService) AssignmentService {
	v.inner = wrapped
	return v
}
