package usecase

import (
	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/pkg/datemath"
	pkgLog "calendar-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	factory  repository.Factory
	cal      *datemath.Calendar
	timezone string
}

// New creates a new calendar UseCase instance.
func New(l pkgLog.Logger, factory repository.Factory, cal *datemath.Calendar, timezone string) *implUseCase {
	return &implUseCase{
		l:        l,
		factory:  factory,
		cal:      cal,
		timezone: timezone,
	}
}
