package model

// EventDateTime is the start or end marker of a calendar event. Exactly one
// of Date (all-day, YYYY-MM-DD) or DateTime (RFC3339) is set.
type EventDateTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Value returns whichever of DateTime or Date is populated.
func (e *EventDateTime) Value() string {
	if e == nil {
		return ""
	}
	if e.DateTime != "" {
		return e.DateTime
	}
	return e.Date
}

// IsZero reports whether neither Date nor DateTime is set.
func (e *EventDateTime) IsZero() bool {
	return e == nil || (e.Date == "" && e.DateTime == "")
}

// Attendee is an event attendee.
type Attendee struct {
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"`
}

// Organizer is the event organizer.
type Organizer struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// EventRef is the projection of a Google Calendar event the assistant works
// with. It is a read-only snapshot taken once per chat turn; mutations go
// through Action objects translated into backend calls.
type EventRef struct {
	ID               string         `json:"id"`
	RecurringEventID string         `json:"recurringEventId,omitempty"`
	Summary          string         `json:"summary"`
	Description      string         `json:"description,omitempty"`
	Location         string         `json:"location,omitempty"`
	Start            *EventDateTime `json:"start"`
	End              *EventDateTime `json:"end"`
	Recurrence       []string       `json:"recurrence,omitempty"`
	Attendees        []Attendee     `json:"attendees,omitempty"`
	Organizer        *Organizer     `json:"organizer,omitempty"`
	HTMLLink         string         `json:"htmlLink,omitempty"`
}
