// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/migrations"
)

// DB wraps the shared *sql.DB connection pool.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an already opened connection pool.
func NewDB(conn *sql.DB, logger *logger.Logger) *DB {
	return &DB{DB: conn, logger: logger}
}

// Migrate applies all pending embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Ping verifies that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// WithTx runs fn as one unit of work.
//
// The transaction is committed when fn returns nil and rolled back when fn
// returns an error or panics. A panic is re-raised after the rollback.
// Errors returned by fn are passed through unchanged; begin and commit
// failures are wrapped with [ErrBeginningTransaction] and
// [ErrCommitingTransaction].
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "*DB.WithTx").Msg("failed to roll back transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
