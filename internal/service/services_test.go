package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/mock"
	"github.com/MKhiriev/go-staffing/internal/store"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		Pinger:               mock.NewMockPinger(ctrl),
		UserRepository:       mock.NewMockUserRepository(ctrl),
		ProjectRepository:    mock.NewMockProjectRepository(ctrl),
		AssignmentRepository: mock.NewMockAssignmentRepository(ctrl),
	}

	services, err := NewServices(storages, config.App{Version: "1.2.3"}, mock.NewMockPasswordHasher(ctrl), logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.IsType(t, &UserValidationService{}, services.UserService)
	assert.IsType(t, &ProjectValidationService{}, services.ProjectService)
	assert.IsType(t, &AssignmentValidationService{}, services.AssignmentService)
	assert.NotNil(t, services.HealthService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, config.App{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
