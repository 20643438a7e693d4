package gcalendar

import "time"

// EventTime is one boundary of an event: either an all-day date (YYYY-MM-DD)
// or an RFC3339 datetime, with an optional IANA timezone.
type EventTime struct {
	Date     string
	DateTime string
	TimeZone string
}

// IsZero reports whether neither Date nor DateTime is set.
func (t EventTime) IsZero() bool {
	return t.Date == "" && t.DateTime == ""
}

// EventDraft is the writable portion of a calendar event. For patch calls,
// zero-value fields are left untouched.
type EventDraft struct {
	Summary     string
	Description string
	Location    string
	Start       EventTime
	End         EventTime
	Attendees   []string // attendee email addresses
	Recurrence  []string // RRULE strings
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID               string
	RecurringEventID string
	Summary          string
	Description      string
	Location         string
	HTMLLink         string
	Start            EventTime
	End              EventTime
	Recurrence       []string
	Attendees        []Attendee
	Organizer        *Organizer
}

// Attendee is an event attendee as returned by the API.
type Attendee struct {
	Email          string
	DisplayName    string
	ResponseStatus string
}

// Organizer is the event organizer as returned by the API.
type Organizer struct {
	Email       string
	DisplayName string
}

// ListOptions is the input for listing events.
type ListOptions struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// BatchResult is the per-item outcome of a batched create or delete.
type BatchResult struct {
	Index int
	ID    string
	Event *Event
	Err   error
}
