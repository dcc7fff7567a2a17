// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials are the username/password pair extracted from an
// "Authorization: Basic" header.
type Credentials struct {
	Name     string
	Password string
}

// ClientInfo describes the transport peer of a request.
type ClientInfo struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// RequestInfo is the diagnostic echo of an inbound request.
type RequestInfo struct {
	Client  ClientInfo        `json:"client"`
	Headers map[string]string `json:"headers"`
}

// Diagnostics is the payload of GET /.
type Diagnostics struct {
	Request RequestInfo `json:"request"`
	User    *User       `json:"user,omitempty"`
}
