// Package timeexpr resolves time-range shorthand into RFC 3339 timestamps.
//
// Accepted forms: "now", "now-<n><unit>" (unit: s, m, h, d, w), unix epoch
// milliseconds, and RFC 3339 timestamps. Everything resolves client-side so
// that the request carries only absolute times.
package timeexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// units maps an expression suffix to its duration.
var units = map[byte]time.Duration{
	's': time.Second,
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
	'w': 7 * 24 * time.Hour,
}

// Resolve converts a time expression into an RFC 3339 UTC timestamp,
// anchored at the given reference time.
func Resolve(expr string, now time.Time) (string, error) {
	s := strings.TrimSpace(expr)

	switch {
	case s == "":
		return "", fmt.Errorf("empty time expression")

	case s == "now":
		return format(now), nil

	case strings.HasPrefix(s, "now-"):
		d, err := parseOffset(s[len("now-"):])
		if err != nil {
			return "", fmt.Errorf("invalid time expression %q: %w", expr, err)
		}
		return format(now.Add(-d)), nil

	case isDigits(s):
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid epoch milliseconds %q: %w", expr, err)
		}
		return format(time.UnixMilli(ms)), nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return format(t), nil
	}

	return "", fmt.Errorf("unrecognized time expression %q (want now, now-<n><s|m|h|d|w>, epoch milliseconds, or RFC 3339)", expr)
}

// parseOffset parses the "<n><unit>" part of a relative expression.
func parseOffset(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("offset must be <n><s|m|h|d|w>")
	}

	unit, ok := units[s[len(s)-1]]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q (want s, m, h, d, or w)", s[len(s)-1:])
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("offset amount %q is not a number", s[:len(s)-1])
	}

	return time.Duration(n) * unit, nil
}

// format renders a timestamp as RFC 3339 in UTC.
func format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// isDigits reports whether s is a non-empty all-digit string.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
