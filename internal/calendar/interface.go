package calendar

import (
	"context"

	"calendar-assistant/internal/model"
)

// UseCase defines the business logic interface for the calendar domain.
// Every call acts as the caller identified by the scope's access token;
// Google Calendar remains the system of record.
type UseCase interface {
	// List fetches the event window, expanding recurring events.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Create inserts a new event.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.EventRef, error)

	// Update applies a partial update to an existing event.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.EventRef, error)

	// Delete removes an event by id.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// CreateBatch inserts several events, isolating per-item failures.
	CreateBatch(ctx context.Context, sc model.Scope, inputs []CreateInput) ([]BatchResult, error)

	// DeleteBatch removes several events, isolating per-item failures.
	DeleteBatch(ctx context.Context, sc model.Scope, ids []string) ([]BatchResult, error)

	// ExportICS renders the window as an iCalendar document.
	ExportICS(ctx context.Context, sc model.Scope, input ListInput) ([]byte, error)
}
