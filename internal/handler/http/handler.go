package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/service"
)

type Handler struct {
	services *service.Services

	realm          string
	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Request metrics are registered in
// registry, which is also what GET /metrics exposes; a nil registry gets a
// fresh one.
func NewHandler(services *service.Services, cfg config.StructuredConfig, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	realm := cfg.App.BasicRealm
	if realm == "" {
		realm = config.DefaultBasicRealm
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		realm:          realm,
		requestTimeout: cfg.Server.RequestTimeout,
		registry:       registry,
		metrics:        newMetrics(registry),
		logger:         logger,
	}
}
