package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/handler"
	"github.com/MKhiriev/go-staffing/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
