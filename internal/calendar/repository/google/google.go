package google

import (
	"context"
	"fmt"

	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
	pkgLog "calendar-assistant/pkg/log"
)

// Factory creates per-token Google Calendar backends.
type Factory struct {
	l          pkgLog.Logger
	calendarID string
}

// NewFactory creates a backend factory targeting the given calendar id
// ("primary" when empty).
func NewFactory(l pkgLog.Logger, calendarID string) *Factory {
	return &Factory{l: l, calendarID: calendarID}
}

// ForToken opens a backend acting as the owner of the access token.
func (f *Factory) ForToken(ctx context.Context, accessToken string) (repository.Backend, error) {
	client, err := gcalendar.NewClientFromToken(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("google repository: %w", err)
	}
	return &backend{l: f.l, client: client, calendarID: f.calendarID}, nil
}

type backend struct {
	l          pkgLog.Logger
	client     *gcalendar.Client
	calendarID string
}

func (b *backend) ListEvents(ctx context.Context, opt repository.ListOptions) ([]model.EventRef, error) {
	events, err := b.client.ListEvents(ctx, gcalendar.ListOptions{
		CalendarID: b.calendarID,
		TimeMin:    opt.TimeMin,
		TimeMax:    opt.TimeMax,
		MaxResults: opt.MaxResults,
	})
	if err != nil {
		return nil, err
	}

	refs := make([]model.EventRef, 0, len(events))
	for _, ev := range events {
		refs = append(refs, toEventRef(ev))
	}
	return refs, nil
}

func (b *backend) CreateEvent(ctx context.Context, write repository.EventWrite) (model.EventRef, error) {
	created, err := b.client.CreateEvent(ctx, b.calendarID, toDraft(write))
	if err != nil {
		return model.EventRef{}, err
	}
	return toEventRef(*created), nil
}

func (b *backend) CreateEvents(ctx context.Context, writes []repository.EventWrite) []repository.ItemResult {
	drafts := make([]gcalendar.EventDraft, 0, len(writes))
	for _, w := range writes {
		drafts = append(drafts, toDraft(w))
	}
	return toItemResults(b.client.CreateEvents(ctx, b.calendarID, drafts))
}

func (b *backend) PatchEvent(ctx context.Context, id string, write repository.EventWrite) (model.EventRef, error) {
	updated, err := b.client.PatchEvent(ctx, b.calendarID, id, toDraft(write))
	if err != nil {
		return model.EventRef{}, err
	}
	return toEventRef(*updated), nil
}

func (b *backend) DeleteEvent(ctx context.Context, id string) error {
	return b.client.DeleteEvent(ctx, b.calendarID, id)
}

func (b *backend) DeleteEvents(ctx context.Context, ids []string) []repository.ItemResult {
	return toItemResults(b.client.DeleteEvents(ctx, b.calendarID, ids))
}

func toDraft(w repository.EventWrite) gcalendar.EventDraft {
	return gcalendar.EventDraft{
		Summary:     w.Summary,
		Description: w.Description,
		Location:    w.Location,
		Start:       toEventTime(w.Start),
		End:         toEventTime(w.End),
		Attendees:   w.Attendees,
		Recurrence:  w.Recurrence,
	}
}

func toEventTime(t model.EventDateTime) gcalendar.EventTime {
	return gcalendar.EventTime{Date: t.Date, DateTime: t.DateTime, TimeZone: t.TimeZone}
}

func fromEventTime(t gcalendar.EventTime) *model.EventDateTime {
	if t.IsZero() {
		return nil
	}
	return &model.EventDateTime{Date: t.Date, DateTime: t.DateTime, TimeZone: t.TimeZone}
}

func toEventRef(ev gcalendar.Event) model.EventRef {
	ref := model.EventRef{
		ID:               ev.ID,
		RecurringEventID: ev.RecurringEventID,
		Summary:          ev.Summary,
		Description:      ev.Description,
		Location:         ev.Location,
		Start:            fromEventTime(ev.Start),
		End:              fromEventTime(ev.End),
		Recurrence:       ev.Recurrence,
		HTMLLink:         ev.HTMLLink,
	}
	for _, a := range ev.Attendees {
		ref.Attendees = append(ref.Attendees, model.Attendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			ResponseStatus: a.ResponseStatus,
		})
	}
	if ev.Organizer != nil {
		ref.Organizer = &model.Organizer{Email: ev.Organizer.Email, DisplayName: ev.Organizer.DisplayName}
	}
	return ref
}

func toItemResults(results []gcalendar.BatchResult) []repository.ItemResult {
	out := make([]repository.ItemResult, 0, len(results))
	for _, r := range results {
		item := repository.ItemResult{Index: r.Index, ID: r.ID, Err: r.Err}
		if r.Event != nil {
			ref := toEventRef(*r.Event)
			item.Event = &ref
		}
		out = append(out, item)
	}
	return out
}
