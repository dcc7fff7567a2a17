package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/utils"
	"github.com/MKhiriev/go-staffing/models"
)

const defaultTimeout = 15 * time.Second

type httpStaffingClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPStaffingClient constructs an HTTP implementation of [StaffingClient]
// for the server at address ("host:port" or a full URL). A non-positive
// timeout falls back to 15s.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPStaffingClient(address string, timeout time.Duration, logger *logger.Logger) (StaffingClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpStaffingClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpStaffingClient) WithCredentials(name, password string) StaffingClient {
	return &httpStaffingClient{
		client: c.client.WithBasicAuth(name, password),
		logger: c.logger,
	}
}

func (c *httpStaffingClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *httpStaffingClient) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id.String(), nil, &user); err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (c *httpStaffingClient) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", user, &created); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (c *httpStaffingClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (c *httpStaffingClient) GetProject(ctx context.Context, id uuid.UUID) (models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+id.String(), nil, &project); err != nil {
		return models.Project{}, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

func (c *httpStaffingClient) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var created models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", project, &created); err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

func (c *httpStaffingClient) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := c.do(ctx, http.MethodGet, "/assignments", nil, &assignments); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

func (c *httpStaffingClient) UpsertAssignment(ctx context.Context, upsert models.AssignmentUpsert) (models.Assignment, error) {
	var assignment models.Assignment
	if err := c.do(ctx, http.MethodPut, "/assignments", upsert, &assignment); err != nil {
		return models.Assignment{}, fmt.Errorf("upsert assignment: %w", err)
	}
	return assignment, nil
}

// Diagnostics is served without the data envelope.
func (c *httpStaffingClient) Diagnostics(ctx context.Context) (models.Diagnostics, error) {
	var info models.Diagnostics

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return models.Diagnostics{}, fmt.Errorf("diagnostics request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.Diagnostics{}, fmt.Errorf("diagnostics: %w", decodeResponse(resp, nil))
	}

	return info, nil
}

func (c *httpStaffingClient) Health(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, nil); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	return nil
}

func (c *httpStaffingClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("version: %w", decodeResponse(resp, nil))
	}

	return strings.TrimSpace(resp.String()), nil
}

// do sends body (if any) as JSON and unwraps the response envelope into out.
func (c *httpStaffingClient) do(ctx context.Context, method, path string, body, out any) error {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	if err = decodeResponse(resp, out); err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("request failed")
		return err
	}

	return nil
}
