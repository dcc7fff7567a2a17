package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staffing/models"
)

func TestDiagnostics_EchoesRequest(t *testing.T) {
	d := newTestDeps(t)
	d.expectAdmin()

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/", nil))
	req.Host = "asgi"
	req.RemoteAddr = "127.0.0.1:53211"
	req.Header.Set("User-Agent", "python-httpx/0.18.2")
	req.Header.Add("X-Forwarded-For", "10.0.0.1")
	req.Header.Add("X-Forwarded-For", "10.0.0.2")

	rec := d.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Diagnostics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "127.0.0.1", got.Request.Client.Host)
	assert.Equal(t, 53211, got.Request.Client.Port)
	assert.Equal(t, "asgi", got.Request.Headers["host"])
	assert.Equal(t, "python-httpx/0.18.2", got.Request.Headers["user-agent"])
	assert.Equal(t, "10.0.0.1, 10.0.0.2", got.Request.Headers["x-forwarded-for"])
	assert.NotContains(t, got.Request.Headers, "authorization")

	require.NotNil(t, got.User)
	assert.Equal(t, testAdmin.ID, got.User.ID)
	assert.Empty(t, got.User.Password)
}

func TestClientInfo(t *testing.T) {
	assert.Equal(t, models.ClientInfo{Host: "::1", Port: 8080}, clientInfo("[::1]:8080"))
	assert.Equal(t, models.ClientInfo{Host: "pipe"}, clientInfo("pipe"))
}
