package model

// EventEntry is a single event as returned by the events search API.
type EventEntry struct {
	ID         string          `json:"id,omitempty"`
	Type       string          `json:"type,omitempty"`
	Attributes EventAttributes `json:"attributes"`
}

// EventAttributes holds the outer attribute envelope of an event.
// The interesting fields (title, status) live one level deeper.
type EventAttributes struct {
	Timestamp  string                `json:"timestamp,omitempty"` // RFC 3339
	Message    string                `json:"message,omitempty"`
	Tags       []string              `json:"tags,omitempty"`
	Attributes *EventInnerAttributes `json:"attributes,omitempty"`
}

// EventInnerAttributes is the nested attribute object of an event.
type EventInnerAttributes struct {
	Title  string        `json:"title,omitempty"`
	Status string        `json:"status,omitempty"`
	Evt    *EventDetails `json:"evt,omitempty"`
}

// EventDetails carries event metadata such as the originating event name.
type EventDetails struct {
	Name string `json:"name,omitempty"`
}
