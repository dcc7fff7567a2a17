// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the JSON envelope of every API payload.
// Exactly one of Data or Errors is populated.
type Response struct {
	// Data carries the requested entity or sequence of entities.
	Data any `json:"data,omitempty"`

	// Errors carries human-readable error messages,
	// e.g. "user already exists".
	Errors []string `json:"errors,omitempty"`
}

// DataResponse wraps data into a [Response].
func DataResponse(data any) Response {
	return Response{Data: data}
}

// ErrorResponse wraps messages into a [Response].
func ErrorResponse(messages ...string) Response {
	return Response{Errors: messages}
}
