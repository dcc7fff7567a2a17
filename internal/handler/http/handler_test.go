package http

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/service"
)

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, nil, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, config.DefaultBasicRealm, h.realm)
	assert.NotNil(t, h.registry)
	assert.NotNil(t, h.metrics)
	assert.Zero(t, h.requestTimeout)
}

func TestNewHandler_UsesConfig(t *testing.T) {
	cfg := config.StructuredConfig{
		App:    config.App{BasicRealm: "crew"},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
	registry := prometheus.NewRegistry()

	h := NewHandler(&service.Services{}, cfg, registry, logger.Nop())

	assert.Equal(t, "crew", h.realm)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Same(t, registry, h.registry)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	// each handler registers its collectors in its own registry
	h1 := NewHandler(&service.Services{}, config.StructuredConfig{}, nil, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.StructuredConfig{}, nil, logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.registry, h2.registry)
}
