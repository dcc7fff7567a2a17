package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/mock"
	"github.com/MKhiriev/go-staffing/internal/service"
	"github.com/MKhiriev/go-staffing/models"
)

const (
	adminName     = "admin"
	adminPassword = "secret"
)

var testAdmin = models.User{ID: uuid.MustParse("0b6a4f0e-63c5-4a4e-9d65-0c7d1f1d5a01"), Name: adminName, IsAdmin: true}

type testDeps struct {
	handler     *Handler
	router      http.Handler
	auth        *mock.MockAuthService
	users       *mock.MockUserService
	projects    *mock.MockProjectService
	assignments *mock.MockAssignmentService
	appInfo     *mock.MockAppInfoService
	health      *mock.MockHealthService
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		auth:        mock.NewMockAuthService(ctrl),
		users:       mock.NewMockUserService(ctrl),
		projects:    mock.NewMockProjectService(ctrl),
		assignments: mock.NewMockAssignmentService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
		health:      mock.NewMockHealthService(ctrl),
	}

	services := &service.Services{
		AuthService:       d.auth,
		UserService:       d.users,
		ProjectService:    d.projects,
		AssignmentService: d.assignments,
		AppInfoService:    d.appInfo,
		HealthService:     d.health,
	}

	d.handler = NewHandler(services, config.StructuredConfig{}, nil, logger.Nop())
	d.router = d.handler.Init()

	return d
}

// expectAdmin makes the guard admit the test admin once.
func (d *testDeps) expectAdmin() {
	d.auth.EXPECT().
		Authenticate(gomock.Any(), models.Credentials{Name: adminName, Password: adminPassword}).
		Return(testAdmin, nil)
}

func (d *testDeps) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)
	return rec
}

func newJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		payload, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asAdmin(req *http.Request) *http.Request {
	req.SetBasicAuth(adminName, adminPassword)
	return req
}

// envelope is the decoded {"data"} / {"errors"} body.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []string        `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}
