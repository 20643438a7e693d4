package http

import (
	"errors"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/response"
)

// mapError translates domain errors into HTTP errors. Unknown errors are
// hidden behind a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery), errors.Is(err, assistant.ErrNoActions):
		return response.NewHTTPError(400, err.Error())
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
