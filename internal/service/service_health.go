package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/store"
)

type healthService struct {
	pinger store.Pinger
	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, logger: logger}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("store is unreachable")
		return fmt.Errorf("store is unreachable: %w", err)
	}
	return nil
}
