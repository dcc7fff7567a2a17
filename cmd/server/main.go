package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/crypto"
	"github.com/MKhiriev/go-staffing/internal/handler"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/server"
	"github.com/MKhiriev/go-staffing/internal/service"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("staffing-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cfg.UseBuildVersion(buildInfo.BuildVersion())

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Str("realm", cfg.App.BasicRealm).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewPostgresStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, crypto.NewPasswordHasher(crypto.DefaultParams), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminName != "" && cfg.App.AdminPassword != "" {
		admin, adminErr := services.UserService.EnsureAdmin(ctx, cfg.App.AdminName, cfg.App.AdminPassword)
		if adminErr != nil {
			log.Fatal().Err(adminErr).Msg("error ensuring bootstrap admin")
		}
		log.Info().Str("admin", admin.Name).Str("admin_id", admin.ID.String()).Msg("bootstrap admin ready")
	} else {
		log.Warn().Msg("no bootstrap admin configured")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	registry.MustRegister(storages.Collectors()...)

	handlers, err := handler.NewHandlers(services, cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
