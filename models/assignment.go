// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Assignment binds one user to one project for a period of time.
// At most one assignment exists per (project, user) pair.
type Assignment struct {
	// ID is the server-generated identifier of the assignment row.
	ID uuid.UUID `json:"id"`

	// UserID references an existing user.
	UserID uuid.UUID `json:"user_id"`

	// ProjectID references an existing project.
	ProjectID uuid.UUID `json:"project_id"`

	// Begins is the first day of the assignment.
	Begins Date `json:"begins"`

	// Ends is the optional last day of the assignment.
	Ends *Date `json:"ends"`

	// User is the referenced user, attached by join queries.
	// It never carries a password.
	User *User `json:"user,omitempty"`

	// Project is the referenced project, attached by join queries.
	Project *Project `json:"project,omitempty"`
}

// AssignmentUpsert is the payload of PUT /assignments.
// UserID and ProjectID are nil only when absent from the payload; an
// explicit all-zero UUID is kept and fails as an unknown reference.
// Begins is optional: a missing value means "today".
type AssignmentUpsert struct {
	UserID    *uuid.UUID `json:"user_id"`
	ProjectID *uuid.UUID `json:"project_id"`
	Begins    *Date      `json:"begins,omitempty"`
	Ends      *Date      `json:"ends,omitempty"`
}

// NewAssignmentUpsert returns a payload referencing userID and projectID.
func NewAssignmentUpsert(userID, projectID uuid.UUID) AssignmentUpsert {
	return AssignmentUpsert{UserID: &userID, ProjectID: &projectID}
}
