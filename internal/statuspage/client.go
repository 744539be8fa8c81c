// Package statuspage renders the status page for the Seyali API.
//
// Each page load issues three independent requests against the status
// service and displays whatever subset succeeded; a failed call
// degrades its own display region and nothing else.
package statuspage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/seyali/seyali/internal/model"
)

// HealthInfo is the subset of the health payload the page consumes.
type HealthInfo struct {
	Status      string `json:"status"`
	Uptime      int64  `json:"uptime"`
	Environment string `json:"environment"`
}

// Client fetches status service endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the service at baseURL.
// The page issues each call exactly once with no retries and no
// client-side timeout; the inbound request context is the only bound.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// FetchHealth calls GET /health.
func (c *Client) FetchHealth(ctx context.Context) (*HealthInfo, error) {
	var info HealthInfo
	if err := c.getJSON(ctx, "/health", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// FetchGreeting calls GET /api/hello.
func (c *Client) FetchGreeting(ctx context.Context) (*model.Greeting, error) {
	var greeting model.Greeting
	if err := c.getJSON(ctx, "/api/hello", &greeting); err != nil {
		return nil, err
	}
	return &greeting, nil
}

// FetchStatus calls GET /api/status.
func (c *Client) FetchStatus(ctx context.Context) (*model.StatusSnapshot, error) {
	var snapshot model.StatusSnapshot
	if err := c.getJSON(ctx, "/api/status", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}
