// Package server runs the application's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
