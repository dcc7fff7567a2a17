package adapter

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/models"
)

// memoryStore keeps users, projects and assignments in maps and enforces the
// same uniqueness and reference rules as the PostgreSQL schema.
type memoryStore struct {
	mu sync.Mutex

	users       map[uuid.UUID]models.User
	projects    map[uuid.UUID]models.Project
	assignments map[[2]uuid.UUID]models.Assignment

	pingErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       make(map[uuid.UUID]models.User),
		projects:    make(map[uuid.UUID]models.Project),
		assignments: make(map[[2]uuid.UUID]models.Assignment),
	}
}

func (m *memoryStore) storages() *store.Storages {
	return &store.Storages{
		Pinger:               m,
		UserRepository:       m,
		ProjectRepository:    m,
		AssignmentRepository: m,
	}
}

func (m *memoryStore) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pingErr
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Name == user.Name {
			return models.User{}, store.ErrUserAlreadyExists
		}
	}

	user.ID = uuid.New()
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryStore) GetUser(_ context.Context, filter models.UserFilter) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if (filter.ID != uuid.Nil && u.ID == filter.ID) || (filter.Name != "" && u.Name == filter.Name) {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryStore) ListUsers(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b models.User) int { return cmp.Compare(a.Name, b.Name) })
	return users, nil
}

func (m *memoryStore) CreateProject(_ context.Context, project models.Project) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.projects {
		if p.Name == project.Name {
			return models.Project{}, store.ErrProjectAlreadyExists
		}
	}

	project.ID = uuid.New()
	m.projects[project.ID] = project
	return project, nil
}

func (m *memoryStore) GetProject(_ context.Context, id uuid.UUID) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return models.Project{}, store.ErrProjectNotFound
	}
	return p, nil
}

func (m *memoryStore) ListProjects(context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	projects := make([]models.Project, 0, len(m.projects))
	for _, p := range m.projects {
		projects = append(projects, p)
	}
	slices.SortFunc(projects, func(a, b models.Project) int { return cmp.Compare(a.Name, b.Name) })
	return projects, nil
}

func (m *memoryStore) UpsertAssignment(_ context.Context, assignment models.Assignment) (models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, userOK := m.users[assignment.UserID]
	project, projectOK := m.projects[assignment.ProjectID]
	if !userOK || !projectOK {
		return models.Assignment{}, store.ErrInvalidAssignmentReference
	}

	key := [2]uuid.UUID{assignment.ProjectID, assignment.UserID}
	if existing, ok := m.assignments[key]; ok {
		assignment.ID = existing.ID
	} else {
		assignment.ID = uuid.New()
	}

	public := user.Public()
	assignment.User = &public
	assignment.Project = &project
	m.assignments[key] = assignment
	return assignment, nil
}

func (m *memoryStore) ListAssignments(context.Context) ([]models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	assignments := make([]models.Assignment, 0, len(m.assignments))
	for _, a := range m.assignments {
		assignments = append(assignments, a)
	}
	slices.SortFunc(assignments, func(a, b models.Assignment) int {
		return cmp.Or(
			cmp.Compare(a.Project.Name, b.Project.Name),
			cmp.Compare(a.User.Name, b.User.Name),
		)
	})
	return assignments, nil
}

var (
	_ store.UserRepository       = (*memoryStore)(nil)
	_ store.ProjectRepository    = (*memoryStore)(nil)
	_ store.AssignmentRepository = (*memoryStore)(nil)
	_ store.Pinger               = (*memoryStore)(nil)
)
