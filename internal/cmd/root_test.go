package cmd

import (
	"strings"
	"testing"

	"github.com/MNThomson/datadog-cli/internal/output"
)

func TestNewRendererText(t *testing.T) {
	defer func() { outputFmt = "text" }()

	for _, format := range []string{"text", "TEXT", ""} {
		outputFmt = format
		r, err := newRenderer()
		if err != nil {
			t.Errorf("newRenderer with format %q returned error: %v", format, err)
			continue
		}
		if _, ok := r.(*output.TextRenderer); !ok {
			t.Errorf("expected TextRenderer for format %q, got %T", format, r)
		}
	}
}

func TestNewRendererJSON(t *testing.T) {
	defer func() { outputFmt = "text" }()

	outputFmt = "json"
	r, err := newRenderer()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*output.JSONRenderer); !ok {
		t.Errorf("expected JSONRenderer, got %T", r)
	}
}

func TestNewRendererUnknownFormat(t *testing.T) {
	defer func() { outputFmt = "text" }()

	outputFmt = "yaml"
	_, err := newRenderer()
	if err == nil {
		t.Fatal("expected error for unknown output format")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("error should name the bad format, got %q", err.Error())
	}
}
