package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrMissingFields     = errors.New("summary, start, and end are required")
	ErrMissingID         = errors.New("event id is required")
	ErrInvalidWindow     = errors.New("end must be after start")
	ErrWindowTooLarge    = errors.New("date range too large (max 18 months)")
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")
)
