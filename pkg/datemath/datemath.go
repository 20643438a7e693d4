package datemath

import (
	"fmt"
	"time"
)

// DateFormatISO is the inclusive-date wire format used for range boundaries.
const DateFormatISO = "2006-01-02"

// Calendar performs date window arithmetic in a fixed IANA timezone. All
// boundaries it produces are whole calendar days in that timezone.
type Calendar struct {
	location *time.Location
}

// New creates a Calendar for the given IANA timezone string, e.g. "Europe/Berlin".
func New(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// In returns a Calendar for the given timezone, or c itself when the name
// is empty or unknown. Used to honor a per-request timezone override.
func (c *Calendar) In(timezone string) *Calendar {
	if timezone == "" {
		return c
	}
	derived, err := New(timezone)
	if err != nil {
		return c
	}
	return derived
}

// StartOfDay returns midnight at the start of the given day.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// AddDays returns the start of the day n days after t.
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, n)
}

// StartOfMonth returns the first day of the given month.
func (c *Calendar) StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, c.location)
}

// EndOfMonth returns the last day of the given month.
func (c *Calendar) EndOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, c.location)
}

// WeekStart returns the Sunday on or before t.
func (c *Calendar) WeekStart(t time.Time) time.Time {
	t = c.StartOfDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// FormatDate renders t as an inclusive ISO date in the calendar's timezone.
func (c *Calendar) FormatDate(t time.Time) string {
	return t.In(c.location).Format(DateFormatISO)
}

// ParseDate parses an ISO date or RFC3339 datetime into the calendar's
// timezone, truncated to the start of its day.
func (c *Calendar) ParseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateFormatISO, value, c.location); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q: %w", value, err)
	}
	return c.StartOfDay(t), nil
}

// MonthsBetween returns the calendar-month distance from a to b, ignoring
// the day component. The result is negative when b precedes a's month.
func (c *Calendar) MonthsBetween(a, b time.Time) int {
	a = a.In(c.location)
	b = b.In(c.location)
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
