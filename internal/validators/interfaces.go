// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// A Validator receives the value to check and, optionally, the names of the
// fields to restrict the check to. Without field names a per-type default
// set is validated. Referential rules (an assignment pointing at an existing
// user) are left to the database.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
