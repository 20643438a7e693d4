package usecase

import (
	calendarDomain "calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
	pkgLog "calendar-assistant/pkg/log"
)

const defaultMaxHistory = 6

type implUseCase struct {
	l        pkgLog.Logger
	llm      gemini.IGemini
	calendar calendarDomain.UseCase

	cal *datemath.Calendar
	// maxHistory bounds the conversation tail forwarded to the model.
	maxHistory int
}

// New creates a new assistant UseCase instance.
func New(l pkgLog.Logger, llm gemini.IGemini, calendar calendarDomain.UseCase, cal *datemath.Calendar, maxHistory int) *implUseCase {
	if maxHistory <= 0 {
		maxHistory = defaultMaxHistory
	}
	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		cal:        cal,
		maxHistory: maxHistory,
	}
}
