// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the admin guard when the
	// request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not a well-formed Basic credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathID is returned when the {id} path segment is not a UUID.
	ErrInvalidPathID = errors.New("invalid id in path")
)
