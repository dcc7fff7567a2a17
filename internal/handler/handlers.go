package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/handler/http"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. Request metrics
// are registered in registry.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, *cfg, registry, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
