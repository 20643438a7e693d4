package repository

import (
	"context"
	"time"

	"calendar-assistant/internal/model"
)

// ListOptions selects the backend event window.
type ListOptions struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// EventWrite is the writable event shape passed to the backend. For patch
// calls, zero-value fields are left untouched.
type EventWrite struct {
	Summary     string
	Description string
	Location    string
	Start       model.EventDateTime
	End         model.EventDateTime
	Attendees   []string
	Recurrence  []string
}

// ItemResult is the per-item outcome of a batched backend call.
type ItemResult struct {
	Index int
	ID    string
	Event *model.EventRef
	Err   error
}

// Backend is one user's view of the calendar store.
type Backend interface {
	ListEvents(ctx context.Context, opt ListOptions) ([]model.EventRef, error)
	CreateEvent(ctx context.Context, write EventWrite) (model.EventRef, error)
	CreateEvents(ctx context.Context, writes []EventWrite) []ItemResult
	PatchEvent(ctx context.Context, id string, write EventWrite) (model.EventRef, error)
	DeleteEvent(ctx context.Context, id string) error
	DeleteEvents(ctx context.Context, ids []string) []ItemResult
}

// Factory opens a Backend bound to one caller's access token. Tokens are
// per-request, so backends are not reused across turns.
type Factory interface {
	ForToken(ctx context.Context, accessToken string) (Backend, error)
}
