package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/handler"
	httphandler "github.com/MKhiriev/go-staffing/internal/handler/http"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/service"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, addr string) Server {
	t.Helper()

	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}}
	handlers := &handler.Handlers{HTTP: httphandler.NewHandler(&service.Services{}, *cfg, nil, logger.Nop())}

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)
	return srv
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	addr := freeAddress(t)
	srv := newTestServer(t, addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// the server answers once it is listening
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/unknown")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReportsListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, l.Addr().String())

	assert.Error(t, srv.Run(context.Background()))
}
