// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client SDK of the staffing HTTP API.
//
// [StaffingClient] covers every endpoint. Responses are unwrapped from the
// {"data"} / {"errors"} envelope; failures are reported as [*APIError] values
// that match the sentinel errors of this package with [errors.Is]
// (e.g. [ErrAlreadyExists] for a duplicate name, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/models"
)

// StaffingClient defines the calls available to API consumers.
// Mutating calls need a client carrying admin credentials
// (see [StaffingClient.WithCredentials]).
type StaffingClient interface {
	// WithCredentials returns a client that authenticates every request with
	// HTTP Basic credentials. The receiver is left unchanged.
	WithCredentials(name, password string) StaffingClient

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)

	// CreateUser returns the stored user together with the submitted password.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	ListAssignments(ctx context.Context) ([]models.Assignment, error)

	// UpsertAssignment creates or overwrites the assignment of the pair.
	UpsertAssignment(ctx context.Context, upsert models.AssignmentUpsert) (models.Assignment, error)

	// Diagnostics returns the server's echo of this client's request.
	Diagnostics(ctx context.Context) (models.Diagnostics, error)

	// Health returns nil while the server reports a reachable store.
	Health(ctx context.Context) error

	Version(ctx context.Context) (string, error)
}
