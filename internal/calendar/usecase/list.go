package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

const (
	maxWindowMonths = 18
	hardCapMonths   = 24

	defaultMaxResults = 500
	maxMaxResults     = 2500
)

// List fetches the event window, expanding recurring events.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input calendar.ListInput) (calendar.ListOutput, error) {
	cal := uc.cal.In(sc.Timezone)
	timeMin, timeMax, err := resolveWindow(cal, input, time.Now())
	if err != nil {
		return calendar.ListOutput{}, err
	}

	backend, err := uc.factory.ForToken(ctx, sc.AccessToken)
	if err != nil {
		return calendar.ListOutput{}, fmt.Errorf("failed to open calendar backend: %w", err)
	}

	events, err := backend.ListEvents(ctx, repository.ListOptions{
		TimeMin:    timeMin,
		TimeMax:    timeMax,
		MaxResults: clampMaxResults(input.MaxResults),
	})
	if err != nil {
		return calendar.ListOutput{}, fmt.Errorf("failed to list events: %w", err)
	}

	uc.l.Infof(ctx, "List: window=%s..%s count=%d", cal.FormatDate(timeMin), cal.FormatDate(timeMax), len(events))

	return calendar.ListOutput{
		Window: calendar.ListWindow{
			Start: timeMin.Format(time.RFC3339),
			End:   timeMax.Format(time.RFC3339),
		},
		Count:  len(events),
		Events: events,
	}, nil
}

// resolveWindow turns the list input into concrete bounds. Explicit bounds
// are capped at 18 months; everything is capped at a 24-month hard limit.
func resolveWindow(cal *datemath.Calendar, input calendar.ListInput, now time.Time) (time.Time, time.Time, error) {
	var timeMin, timeMax time.Time

	switch {
	case input.Start != "" && input.End != "":
		start, err := cal.ParseDate(input.Start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start: %w", err)
		}
		end, err := cal.ParseDate(input.End)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end: %w", err)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, calendar.ErrInvalidWindow
		}
		if cal.MonthsBetween(start, end) > maxWindowMonths {
			return time.Time{}, time.Time{}, calendar.ErrWindowTooLarge
		}
		timeMin = start
		timeMax = end

	case input.Months > 0:
		m := input.Months
		if m > 12 {
			m = 12
		}
		timeMin = cal.StartOfMonth(now.Year(), now.Month()-time.Month(m))
		timeMax = cal.EndOfMonth(now.Year(), now.Month()+time.Month(m))

	default:
		// one month each side of today
		timeMin = cal.StartOfMonth(now.Year(), now.Month()-1)
		timeMax = cal.EndOfMonth(now.Year(), now.Month()+1)
	}

	if cal.MonthsBetween(timeMin, timeMax) > hardCapMonths {
		return time.Time{}, time.Time{}, calendar.ErrWindowTooLarge
	}

	// timeMax is an inclusive date; the backend bound is exclusive.
	return timeMin, timeMax.AddDate(0, 0, 1), nil
}

func clampMaxResults(n int64) int64 {
	if n <= 0 {
		return defaultMaxResults
	}
	if n > maxMaxResults {
		return maxMaxResults
	}
	return n
}
