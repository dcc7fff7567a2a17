package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request made by [HTTPClient].
const UserAgent = "go-staffing-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL that exchanges JSON.
// A zero timeout leaves requests bounded only by their context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithBasicAuth returns a copy of c that sends the given credentials with
// every request. The receiver is left unchanged.
func (c *HTTPClient) WithBasicAuth(name, password string) *HTTPClient {
	clone := resty.New().
		SetBaseURL(c.BaseURL).
		SetTimeout(c.GetClient().Timeout).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": UserAgent,
		}).
		SetBasicAuth(name, password)

	return &HTTPClient{Client: clone}
}
