// Package api is a thin client for Datadog's v2 search APIs.
package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// DefaultSite is the Datadog site used when none is configured.
const DefaultSite = "datadoghq.com"

// maxPageSize is the largest page the search APIs accept.
const maxPageSize = 5000

// Client talks to the Datadog API with static key authentication.
type Client struct {
	apiKey  string
	appKey  string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a Client against the given base URL (e.g.
// "https://api.datadoghq.com"). A nil logger disables debug logging.
func NewClient(apiKey, appKey, baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		apiKey:  apiKey,
		appKey:  appKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// NewClientFromEnv creates a Client authenticated by the DD_API_KEY and
// DD_APP_KEY environment variables.
func NewClientFromEnv(site string, log *zap.Logger) (*Client, error) {
	apiKey := os.Getenv("DD_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing environment variable: DD_API_KEY")
	}
	appKey := os.Getenv("DD_APP_KEY")
	if appKey == "" {
		return nil, fmt.Errorf("missing environment variable: DD_APP_KEY")
	}

	if site == "" {
		site = DefaultSite
	}

	return NewClient(apiKey, appKey, "https://api."+site, log), nil
}

// do sends an authenticated request and returns the response body.
// Non-2xx responses become errors carrying the status and body text.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("DD-API-KEY", c.apiKey)
	req.Header.Set("DD-APPLICATION-KEY", c.appKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error (%s): %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	return raw, nil
}

// pageSize returns the next page size: min(remaining, maxPageSize),
// or maxPageSize when limit <= 0 (no limit). Zero means stop.
func pageSize(limit, collected int) int {
	if limit <= 0 {
		return maxPageSize
	}
	remaining := limit - collected
	if remaining <= 0 {
		return 0
	}
	if remaining > maxPageSize {
		return maxPageSize
	}
	return remaining
}

// searchMeta is the pagination envelope shared by the search responses.
type searchMeta struct {
	Page *pageMeta `json:"page"`
}

type pageMeta struct {
	After string `json:"after"`
}

// after returns the next-page cursor, or "" when this was the last page.
func (m *searchMeta) after() string {
	if m == nil || m.Page == nil {
		return ""
	}
	return m.Page.After
}
