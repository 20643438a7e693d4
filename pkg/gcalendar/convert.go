package gcalendar

import (
	"time"

	"google.golang.org/api/calendar/v3"
)

const timeFormat = time.RFC3339

func toAPITime(t EventTime) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		Date:     t.Date,
		DateTime: t.DateTime,
		TimeZone: t.TimeZone,
	}
}

func fromAPITime(t *calendar.EventDateTime) EventTime {
	if t == nil {
		return EventTime{}
	}
	return EventTime{Date: t.Date, DateTime: t.DateTime, TimeZone: t.TimeZone}
}

func toAPIAttendees(emails []string) []*calendar.EventAttendee {
	attendees := make([]*calendar.EventAttendee, 0, len(emails))
	for _, email := range emails {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}
	return attendees
}

func toAPIEvent(draft EventDraft) *calendar.Event {
	event := &calendar.Event{
		Summary:     draft.Summary,
		Description: draft.Description,
		Location:    draft.Location,
		Start:       toAPITime(draft.Start),
		End:         toAPITime(draft.End),
		Recurrence:  draft.Recurrence,
	}
	if len(draft.Attendees) > 0 {
		event.Attendees = toAPIAttendees(draft.Attendees)
	}
	return event
}

func fromAPIEvent(event *calendar.Event) Event {
	out := Event{
		ID:               event.Id,
		RecurringEventID: event.RecurringEventId,
		Summary:          event.Summary,
		Description:      event.Description,
		Location:         event.Location,
		HTMLLink:         event.HtmlLink,
		Start:            fromAPITime(event.Start),
		End:              fromAPITime(event.End),
		Recurrence:       event.Recurrence,
	}
	for _, a := range event.Attendees {
		if a == nil {
			continue
		}
		out.Attendees = append(out.Attendees, Attendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			ResponseStatus: a.ResponseStatus,
		})
	}
	if event.Organizer != nil {
		out.Organizer = &Organizer{
			Email:       event.Organizer.Email,
			DisplayName: event.Organizer.DisplayName,
		}
	}
	return out
}
