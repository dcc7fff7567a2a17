package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthz(t *testing.T) {
	d := newTestDeps(t)

	d.health.EXPECT().Check(gomock.Any()).Return(nil)
	rec := d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, rec.Body.String())

	d.health.EXPECT().Check(gomock.Any()).Return(errors.New("dial tcp: connection refused"))
	rec = d.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"errors":["store is unreachable"]}`, rec.Body.String())
}
