package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://a", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_SendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestHTTPClient_WithBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", name)
		assert.Equal(t, "secret", password)
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	base := NewHTTPClient(srv.URL, time.Second)
	authed := base.WithBasicAuth("admin", "secret")

	assert.NotSame(t, base.Client, authed.Client)
	assert.Nil(t, base.UserInfo)

	_, err := authed.R().Get("/")
	require.NoError(t, err)
}
