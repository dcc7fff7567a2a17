// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// User represents a staff account. Users are the principals of the API:
// an admin user may create users and projects and manage assignments.
type User struct {
	// ID is the server-generated unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Name is the unique login name of the user.
	Name string `json:"name"`

	// Password holds the password as submitted by the caller on creation.
	// In storage it is replaced by its Argon2id derivation and it is never
	// serialized from persisted users (see [User.Public]).
	Password string `json:"password,omitempty"`

	// IsAdmin grants access to mutating endpoints.
	IsAdmin bool `json:"is_admin"`
}

// Public returns a copy of the user without credential material.
// It is the only representation written to API responses for persisted users.
func (u User) Public() User {
	u.Password = ""
	return u
}

// UserFilter selects a single user either by ID or by Name.
// Exactly one of the two must be set.
type UserFilter struct {
	ID   uuid.UUID
	Name string
}

// IsValid reports whether exactly one lookup key is present.
func (f UserFilter) IsValid() bool {
	return (f.ID != uuid.Nil) != (f.Name != "")
}
