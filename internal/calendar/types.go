package calendar

import "calendar-assistant/internal/model"

// ListInput selects the event window to fetch. Either Start+End, or Months
// (a symmetric window of N months each side of today), or neither (the
// default window of one month each side).
type ListInput struct {
	Start      string // inclusive ISO date or RFC3339 datetime
	End        string
	Months     int
	MaxResults int64
}

// ListWindow is the resolved window actually queried.
type ListWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ListOutput is the result of listing events.
type ListOutput struct {
	Window ListWindow       `json:"window"`
	Count  int              `json:"count"`
	Events []model.EventRef `json:"events"`
}

// CreateInput is the payload for creating an event.
type CreateInput struct {
	Summary     string
	Description string
	Location    string
	Start       model.EventDateTime
	End         model.EventDateTime
	Attendees   []string // email addresses
	Recurrence  []string // RRULE strings, at most MaxRecurrenceRules
}

// UpdateInput is a partial update: zero-value fields are left untouched.
type UpdateInput struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       model.EventDateTime
	End         model.EventDateTime
	Attendees   []string
	Recurrence  []string
}

// BatchResult is the per-item outcome of a batched create or delete.
type BatchResult struct {
	Index   int    `json:"index"`
	EventID string `json:"event_id,omitempty"`
	Error   string `json:"error,omitempty"`

	Event *model.EventRef `json:"event,omitempty"`
}

// OK reports whether the item succeeded.
func (r BatchResult) OK() bool { return r.Error == "" }
