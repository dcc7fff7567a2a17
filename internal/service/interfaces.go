package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the authentication guard of mutating endpoints.
type AuthService interface {
	// Authenticate resolves credentials to an admin principal.
	// It returns ErrUnauthenticated for unknown names or wrong passwords and
	// ErrForbidden for valid credentials of a non-admin user.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
}

type UserService interface {
	// CreateUser stores user and returns it with the assigned ID and the
	// password exactly as submitted.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// EnsureAdmin creates an admin with the given credentials unless a user
	// with that name already exists.
	EnsureAdmin(ctx context.Context, name, password string) (models.User, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
}

type AssignmentService interface {
	// UpsertAssignment creates the assignment of the (project, user) pair or
	// overwrites its dates. A missing begins defaults to today.
	UpsertAssignment(ctx context.Context, upsert models.AssignmentUpsert) (models.Assignment, error)
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	// Check reports whether the store is reachable.
	Check(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}

// AssignmentServiceWrapper defines middleware composition for AssignmentService.
type AssignmentServiceWrapper interface {
	Wrap(AssignmentService) AssignmentService
}
