package gcalendar

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// Client wraps the Google Calendar API service. A Client is bound to one
// user's credentials; construct one per request from the caller's token.
type Client struct {
	service *calendar.Service
}

// NewClientFromToken creates a Calendar client acting as the owner of the
// given OAuth2 access token.
func NewClientFromToken(ctx context.Context, accessToken string) (*Client, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return NewClient(ctx, option.WithTokenSource(src))
}

// NewClient creates a Calendar client from raw client options. Tests use
// this with option.WithHTTPClient and option.WithEndpoint.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns single (recurrence-expanded) events in the window,
// ordered by start time.
func (c *Client) ListEvents(ctx context.Context, opt ListOptions) ([]Event, error) {
	calendarID := opt.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	call := c.service.Events.List(calendarID).
		TimeMin(opt.TimeMin.Format(timeFormat)).
		TimeMax(opt.TimeMax.Format(timeFormat)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if opt.MaxResults > 0 {
		call = call.MaxResults(opt.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, fromAPIEvent(item))
	}
	return events, nil
}

// CreateEvent creates a new calendar event from the draft.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, draft EventDraft) (*Event, error) {
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, toAPIEvent(draft)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	ev := fromAPIEvent(created)
	return &ev, nil
}

// CreateEvents creates the drafts one by one, isolating per-item failures.
// The returned slice has one entry per draft in input order.
func (c *Client) CreateEvents(ctx context.Context, calendarID string, drafts []EventDraft) []BatchResult {
	results := make([]BatchResult, 0, len(drafts))
	for i, draft := range drafts {
		ev, err := c.CreateEvent(ctx, calendarID, draft)
		res := BatchResult{Index: i, Err: err}
		if err == nil {
			res.ID = ev.ID
			res.Event = ev
		}
		results = append(results, res)
	}
	return results
}

// PatchEvent applies a partial update to the event. Only fields set in the
// draft are sent.
func (c *Client) PatchEvent(ctx context.Context, calendarID, eventID string, draft EventDraft) (*Event, error) {
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	patch := &calendar.Event{}
	if draft.Summary != "" {
		patch.Summary = draft.Summary
	}
	if draft.Description != "" {
		patch.Description = draft.Description
	}
	if draft.Location != "" {
		patch.Location = draft.Location
	}
	if !draft.Start.IsZero() {
		patch.Start = toAPITime(draft.Start)
	}
	if !draft.End.IsZero() {
		patch.End = toAPITime(draft.End)
	}
	if len(draft.Attendees) > 0 {
		patch.Attendees = toAPIAttendees(draft.Attendees)
	}
	if len(draft.Recurrence) > 0 {
		patch.Recurrence = draft.Recurrence
	}

	updated, err := c.service.Events.Patch(calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event %s: %w", eventID, err)
	}

	ev := fromAPIEvent(updated)
	return &ev, nil
}

// DeleteEvent removes the event with the given id.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

// DeleteEvents deletes the ids one by one, isolating per-item failures.
func (c *Client) DeleteEvents(ctx context.Context, calendarID string, eventIDs []string) []BatchResult {
	results := make([]BatchResult, 0, len(eventIDs))
	for i, id := range eventIDs {
		err := c.DeleteEvent(ctx, calendarID, id)
		results = append(results, BatchResult{Index: i, ID: id, Err: err})
	}
	return results
}
