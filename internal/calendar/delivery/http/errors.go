package http

import (
	"errors"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/response"
)

var badRequestErrors = []error{
	calendar.ErrMissingFields,
	calendar.ErrMissingID,
	calendar.ErrInvalidWindow,
	calendar.ErrWindowTooLarge,
	calendar.ErrInvalidRecurrence,
}

// mapError translates domain errors into HTTP errors. Unknown errors are
// hidden behind a generic 500.
func (h *handler) mapError(err error) error {
	for _, known := range badRequestErrors {
		if errors.Is(err, known) {
			return response.NewHTTPError(400, err.Error())
		}
	}
	return response.NewHTTPError(500, response.DefaultErrorMessage)
}
