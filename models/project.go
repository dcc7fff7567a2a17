// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Project is a named unit of work users can be assigned to.
type Project struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

