package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users. Uniqueness of names is enforced by the
// database, not by pre-checks.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, filter models.UserFilter) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// AssignmentRepository persists assignments keyed by the (project, user) pair.
type AssignmentRepository interface {
	UpsertAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
