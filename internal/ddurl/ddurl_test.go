package ddurl

import (
	"strings"
	"testing"
)

func TestParseLogsURL(t *testing.T) {
	cases := []struct {
		url       string
		wantQuery string
		wantFrom  string
		wantTo    string
	}{
		{"https://app.datadoghq.com/logs?query=service%3Amyapp", "service:myapp", "now-15m", "now"},
		{"https://app.datadoghq.com/logs", "*", "now-15m", "now"},
		{"https://app.datadoghq.com/logs?query=env%3Aprod", "env:prod", "now-15m", "now"},
	}

	for _, tc := range cases {
		res, err := Parse(tc.url)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tc.url, err)
			continue
		}
		if res.Kind != KindLogs {
			t.Errorf("Parse(%q): expected KindLogs, got %v", tc.url, res.Kind)
		}
		if res.Query != tc.wantQuery {
			t.Errorf("Parse(%q): expected query %q, got %q", tc.url, tc.wantQuery, res.Query)
		}
		if res.From != tc.wantFrom || res.To != tc.wantTo {
			t.Errorf("Parse(%q): expected range %q..%q, got %q..%q", tc.url, tc.wantFrom, tc.wantTo, res.From, res.To)
		}
		if res.Limit != 100 {
			t.Errorf("Parse(%q): expected limit 100, got %d", tc.url, res.Limit)
		}
	}
}

func TestParseLogsURLWithTimestamps(t *testing.T) {
	res, err := Parse("https://app.datadoghq.com/logs?query=*&from_ts=1704067200000&to_ts=1704153600000")
	if err != nil {
		t.Fatal(err)
	}

	if res.From != "2024-01-01T00:00:00Z" {
		t.Errorf("expected from 2024-01-01T00:00:00Z, got %s", res.From)
	}
	if res.To != "2024-01-02T00:00:00Z" {
		t.Errorf("expected to 2024-01-02T00:00:00Z, got %s", res.To)
	}
}

func TestParseEventsURL(t *testing.T) {
	cases := []struct {
		url       string
		wantQuery string
	}{
		{"https://app.datadoghq.com/event/explorer?query=test-runner", "test-runner"},
		{"https://app.datadoghq.com/event/explorer", "*"},
		{"https://app.datadoghq.com/event/explorer?query=source%3Agithub", "source:github"},
	}

	for _, tc := range cases {
		res, err := Parse(tc.url)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tc.url, err)
			continue
		}
		if res.Kind != KindEvents {
			t.Errorf("Parse(%q): expected KindEvents, got %v", tc.url, res.Kind)
		}
		if res.Query != tc.wantQuery {
			t.Errorf("Parse(%q): expected query %q, got %q", tc.url, tc.wantQuery, res.Query)
		}
	}
}

func TestParseRejectsInvalidURLs(t *testing.T) {
	cases := []struct {
		url         string
		errContains string
	}{
		{"https://example.com/logs", "must be a Datadog URL"},
		{"https://google.com/logs", "must be a Datadog URL"},
		{"https://app.datadoghq.com/apm/traces", "unsupported Datadog resource"},
		{"https://app.datadoghq.com/metrics", "unsupported Datadog resource"},
	}

	for _, tc := range cases {
		_, err := Parse(tc.url)
		if err == nil {
			t.Errorf("Parse(%q) should have failed", tc.url)
			continue
		}
		if !strings.Contains(err.Error(), tc.errContains) {
			t.Errorf("Parse(%q): expected error containing %q, got %q", tc.url, tc.errContains, err.Error())
		}
	}
}
