package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MNThomson/datadog-cli/internal/model"
)

// Renderer writes search results to an output stream.
type Renderer interface {
	RenderLog(entry model.LogEntry) error
	RenderEvent(entry model.EventEntry) error
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleTime  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // dim gray
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("40")) // green
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("39")) // blue
	styleTrace = lipgloss.NewStyle().Foreground(lipgloss.Color("51")) // cyan
	stylePlain = lipgloss.NewStyle()
)

// noTimestamp stands in for entries missing a parseable timestamp,
// width-matched to the normal timestamp column.
const noTimestamp = "-------------------"

// noStatus stands in for entries missing a status.
const noStatus = "-----"

// TextRenderer prints entries with severity-based colors, one per line.
type TextRenderer struct {
	w     io.Writer
	color bool
}

// NewTextRenderer returns a Renderer that writes text lines to w.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	return &TextRenderer{w: w, color: color}
}

func (r *TextRenderer) RenderLog(entry model.LogEntry) error {
	ts := formatTimestamp(entry.Attributes.Timestamp)
	status := strings.ToUpper(entry.Attributes.Status)
	if status == "" {
		status = noStatus
	}

	line := fmt.Sprintf("[%s] %s | %s",
		r.style(styleTime, ts),
		r.style(logStatusStyle(status), fmt.Sprintf("%-5s", status)),
		entry.Attributes.Message,
	)
	_, err := fmt.Fprintln(r.w, line)
	return err
}

func (r *TextRenderer) RenderEvent(entry model.EventEntry) error {
	ts := formatTimestamp(entry.Attributes.Timestamp)

	title := "Untitled Event"
	status := "info"
	if inner := entry.Attributes.Attributes; inner != nil {
		switch {
		case inner.Title != "":
			title = inner.Title
		case inner.Evt != nil && inner.Evt.Name != "":
			title = inner.Evt.Name
		}
		if inner.Status != "" {
			status = inner.Status
		}
	}

	tag := r.style(eventStatusStyle(status), fmt.Sprintf("%-5s", strings.ToUpper(status)))

	line := fmt.Sprintf("[%s] %s | %s", r.style(styleTime, ts), tag, title)
	if msg := entry.Attributes.Message; msg != "" {
		line += " - " + r.style(styleTime, msg)
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

// style applies s only when color output is enabled.
func (r *TextRenderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// logStatusStyle maps a log status to its display style.
func logStatusStyle(status string) lipgloss.Style {
	switch status {
	case "ERROR", "CRITICAL", "EMERGENCY", "ALERT":
		return styleError
	case "WARN", "WARNING":
		return styleWarn
	case "INFO":
		return styleOK
	case "DEBUG":
		return styleDebug
	case "TRACE":
		return styleTrace
	default:
		return stylePlain
	}
}

// eventStatusStyle maps an event status to its display style.
// Events use a different palette: "info" is routine, "success" is good news.
func eventStatusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "error":
		return styleError
	case "warning", "warn":
		return styleWarn
	case "success", "ok":
		return styleOK
	case "info":
		return styleDebug
	default:
		return stylePlain
	}
}

// formatTimestamp renders an RFC 3339 wire timestamp as a compact UTC
// column, or a dash placeholder when missing or unparseable.
func formatTimestamp(ts string) string {
	if ts == "" {
		return noTimestamp
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return noTimestamp
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints each entry as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) RenderLog(entry model.LogEntry) error {
	return r.enc.Encode(entry)
}

func (r *JSONRenderer) RenderEvent(entry model.EventEntry) error {
	return r.enc.Encode(entry)
}
