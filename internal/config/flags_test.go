package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:9000", want: NetAddress{Host: "0.0.0.0", Port: 9000}},
		{name: "any host", input: ":8080", want: NetAddress{Host: "", Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname is not an ip", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9999",
		"-d", "postgres://localhost/staffing",
		"-max-open-conns", "3",
		"-c", "/etc/staffing.json",
		"-admin-name", "root",
		"-admin-password", "toor",
		"-realm", "ops",
		"-request-timeout", "15s",
		"-shutdown-timeout", "3s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/staffing", cfg.Storage.DB.DSN)
	assert.Equal(t, 3, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, "/etc/staffing.json", cfg.JSONFilePath)
	assert.Equal(t, "root", cfg.App.AdminName)
	assert.Equal(t, "toor", cfg.App.AdminPassword)
	assert.Equal(t, "ops", cfg.App.BasicRealm)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/tmp/c.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-token-sign-key", "x"})
	assert.Error(t, err)
}
