package service

import (
	"fmt"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/crypto"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/internal/validators"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	ProjectService    ProjectService
	AssignmentService AssignmentService
	AppInfoService    AppInfoService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg config.App, hasher crypto.PasswordHasher, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewStaffingValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, logger),
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, hasher, logger)),
		ProjectService: NewProjectValidationService(validator).
			Wrap(NewProjectService(storages.ProjectRepository, logger)),
		AssignmentService: NewAssignmentValidationService(validator).
			Wrap(NewAssignmentService(storages.AssignmentRepository, logger)),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.Pinger, logger),
	}, nil
}
