// Package ddurl translates browser URLs copied from the Datadog app into
// API search parameters.
package ddurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which search API a URL maps to.
type Kind int

const (
	KindLogs Kind = iota
	KindEvents
)

// Resource is the search extracted from a Datadog web URL.
type Resource struct {
	Kind  Kind
	Query string
	From  string // time expression, ready for timeexpr.Resolve
	To    string
	Limit int
}

// defaultLimit caps URL-driven searches the same way the web UI pages them.
const defaultLimit = 100

// Parse extracts the search behind a *.datadoghq.com web URL.
// Supported pages: /logs and /event/explorer.
func Parse(raw string) (Resource, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Resource{}, fmt.Errorf("invalid URL: %w", err)
	}

	if !strings.Contains(u.Hostname(), "datadoghq.com") {
		return Resource{}, fmt.Errorf("URL must be a Datadog URL (*.datadoghq.com)")
	}

	params := u.Query()

	query := params.Get("query")
	if query == "" {
		query = "*"
	}

	res := Resource{
		Query: query,
		From:  tsParam(params.Get("from_ts"), "now-15m"),
		To:    tsParam(params.Get("to_ts"), "now"),
		Limit: defaultLimit,
	}

	switch u.Path {
	case "/logs":
		res.Kind = KindLogs
	case "/event/explorer":
		res.Kind = KindEvents
	default:
		return Resource{}, fmt.Errorf("unsupported Datadog resource: %s (only /logs and /event/explorer are supported)", u.Path)
	}

	return res, nil
}

// tsParam converts an epoch-milliseconds URL parameter to RFC 3339,
// falling back to the given expression when absent or malformed.
func tsParam(v, fallback string) string {
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
