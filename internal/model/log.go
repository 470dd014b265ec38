package model

// LogEntry is a single log record as returned by the logs search API.
type LogEntry struct {
	ID         string        `json:"id,omitempty"`
	Type       string        `json:"type,omitempty"`
	Attributes LogAttributes `json:"attributes"`
}

// LogAttributes holds the displayable fields of a log record.
// Every field is optional on the wire; absent fields decode to zero values.
type LogAttributes struct {
	Timestamp string   `json:"timestamp,omitempty"` // RFC 3339
	Status    string   `json:"status,omitempty"`    // info, warn, error, ...
	Message   string   `json:"message,omitempty"`
	Host      string   `json:"host,omitempty"`
	Service   string   `json:"service,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}
