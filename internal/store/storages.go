package store

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/logger"
)

// Storages groups every repository backed by one connection pool.
type Storages struct {
	Pinger               Pinger
	UserRepository       UserRepository
	ProjectRepository    ProjectRepository
	AssignmentRepository AssignmentRepository

	db *DB
}

// NewStorages wires all repositories around db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Pinger:               db,
		UserRepository:       NewUserRepository(db, logger),
		ProjectRepository:    NewProjectRepository(db, logger),
		AssignmentRepository: NewAssignmentRepository(db, logger),
		db:                   db,
	}
}

// NewPostgresStorages connects to PostgreSQL, applies pending migrations and
// returns the wired repositories.
func NewPostgresStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStorages(db, logger), nil
}

// Close releases the connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Collectors returns Prometheus collectors exposing the connection pool
// statistics. Storages without a pool have none.
func (s *Storages) Collectors() []prometheus.Collector {
	if s.db == nil {
		return nil
	}
	return []prometheus.Collector{collectors.NewDBStatsCollector(s.db.DB, "staffing")}
}
