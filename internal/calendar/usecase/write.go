package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
)

// MaxRecurrenceRules bounds the RRULE list of a single event.
const MaxRecurrenceRules = 4

// Create inserts a new event.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input calendar.CreateInput) (model.EventRef, error) {
	if input.Summary == "" || input.Start.IsZero() || input.End.IsZero() {
		return model.EventRef{}, calendar.ErrMissingFields
	}
	if err := validateRecurrence(input.Recurrence); err != nil {
		return model.EventRef{}, err
	}

	backend, err := uc.factory.ForToken(ctx, sc.AccessToken)
	if err != nil {
		return model.EventRef{}, fmt.Errorf("failed to open calendar backend: %w", err)
	}

	created, err := backend.CreateEvent(ctx, uc.toWrite(sc, repository.EventWrite{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
		Attendees:   input.Attendees,
		Recurrence:  input.Recurrence,
	}))
	if err != nil {
		return model.EventRef{}, fmt.Errorf("failed to create event: %w", err)
	}

	uc.l.Infof(ctx, "Create: event %q id=%s", created.Summary, created.ID)
	return created, nil
}

// Update applies a partial update to an existing event.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input calendar.UpdateInput) (model.EventRef, error) {
	if input.ID == "" {
		return model.EventRef{}, calendar.ErrMissingID
	}
	if err := validateRecurrence(input.Recurrence); err != nil {
		return model.EventRef{}, err
	}

	backend, err := uc.factory.ForToken(ctx, sc.AccessToken)
	if err != nil {
		return model.EventRef{}, fmt.Errorf("failed to open calendar backend: %w", err)
	}

	updated, err := backend.PatchEvent(ctx, input.ID, uc.toWrite(sc, repository.EventWrite{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
		Attendees:   input.Attendees,
		Recurrence:  input.Recurrence,
	}))
	if err != nil {
		return model.EventRef{}, fmt.Errorf("failed to update event: %w", err)
	}

	uc.l.Infof(ctx, "Update: event id=%s", updated.ID)
	return updated, nil
}

// Delete removes an event by id.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if id == "" {
		return calendar.ErrMissingID
	}

	backend, err := uc.factory.ForToken(ctx, sc.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to open calendar backend: %w", err)
	}

	if err := backend.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	uc.l.Infof(ctx, "Delete: event id=%s", id)
	return nil
}

// CreateBatch inserts several events, isolating per-item failures.
func (uc *implUseCase) CreateBatch(ctx context.Context, sc model.Scope, inputs []calendar.CreateInput) ([]calendar.BatchResult, error) {
	backend, err := uc.factory.ForToken(ctx, sc.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar backend: %w", err)
	}

	writes := make([]repository.EventWrite, 0, len(inputs))
	invalid := make(map[int]error, len(inputs))
	for i, input := range inputs {
		if input.Summary == "" || input.Start.IsZero() || input.End.IsZero() {
			invalid[i] = calendar.ErrMissingFields
			continue
		}
		if err := validateRecurrence(input.Recurrence); err != nil {
			invalid[i] = err
			continue
		}
		writes = append(writes, uc.toWrite(sc, repository.EventWrite{
			Summary:     input.Summary,
			Description: input.Description,
			Location:    input.Location,
			Start:       input.Start,
			End:         input.End,
			Attendees:   input.Attendees,
			Recurrence:  input.Recurrence,
		}))
	}

	backendResults := backend.CreateEvents(ctx, writes)

	// Re-interleave invalid items with backend outcomes in input order.
	results := make([]calendar.BatchResult, 0, len(inputs))
	next := 0
	for i := range inputs {
		if err, ok := invalid[i]; ok {
			results = append(results, calendar.BatchResult{Index: i, Error: err.Error()})
			continue
		}
		r := backendResults[next]
		next++
		item := calendar.BatchResult{Index: i, EventID: r.ID, Event: r.Event}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		results = append(results, item)
	}

	uc.l.Infof(ctx, "CreateBatch: %d requested, %d attempted", len(inputs), len(writes))
	return results, nil
}

// DeleteBatch removes several events, isolating per-item failures.
func (uc *implUseCase) DeleteBatch(ctx context.Context, sc model.Scope, ids []string) ([]calendar.BatchResult, error) {
	backend, err := uc.factory.ForToken(ctx, sc.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar backend: %w", err)
	}

	results := make([]calendar.BatchResult, 0, len(ids))
	for _, r := range backend.DeleteEvents(ctx, ids) {
		item := calendar.BatchResult{Index: r.Index, EventID: r.ID}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		results = append(results, item)
	}

	uc.l.Infof(ctx, "DeleteBatch: %d ids", len(ids))
	return results, nil
}

// toWrite injects a timezone into zoned boundaries that lack one. The
// request scope's timezone wins over the configured default.
func (uc *implUseCase) toWrite(sc model.Scope, w repository.EventWrite) repository.EventWrite {
	tz := sc.Timezone
	if tz == "" {
		tz = uc.timezone
	}
	if w.Start.DateTime != "" && w.Start.TimeZone == "" {
		w.Start.TimeZone = tz
	}
	if w.End.DateTime != "" && w.End.TimeZone == "" {
		w.End.TimeZone = tz
	}
	return w
}

// validateRecurrence checks RRULE strings with the rrule library before they
// reach the API.
func validateRecurrence(rules []string) error {
	if len(rules) == 0 {
		return nil
	}
	if len(rules) > MaxRecurrenceRules {
		return fmt.Errorf("%w: at most %d rules", calendar.ErrInvalidRecurrence, MaxRecurrenceRules)
	}
	if _, err := rrule.StrToRRuleSet(strings.Join(rules, "\n")); err != nil {
		return fmt.Errorf("%w: %v", calendar.ErrInvalidRecurrence, err)
	}
	return nil
}
