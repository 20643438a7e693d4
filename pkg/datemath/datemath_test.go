package datemath_test

import (
	"testing"
	"time"

	"calendar-assistant/pkg/datemath"
)

func TestNew_InvalidTimezone(t *testing.T) {
	if _, err := datemath.New("Not/AZone"); err == nil {
		t.Errorf("expected error for invalid timezone")
	}
}

func TestCalendar_DayAndMonthBoundaries(t *testing.T) {
	cal, err := datemath.New("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	t.Run("StartOfDay", func(t *testing.T) {
		if got := cal.FormatDate(cal.StartOfDay(base)); got != "2025-06-15" {
			t.Errorf("StartOfDay = %s", got)
		}
	})

	t.Run("AddDays", func(t *testing.T) {
		if got := cal.FormatDate(cal.AddDays(base, -7)); got != "2025-06-08" {
			t.Errorf("AddDays(-7) = %s", got)
		}
	})

	t.Run("EndOfMonth", func(t *testing.T) {
		if got := cal.FormatDate(cal.EndOfMonth(2025, time.February)); got != "2025-02-28" {
			t.Errorf("EndOfMonth(Feb 2025) = %s", got)
		}
		if got := cal.FormatDate(cal.EndOfMonth(2024, time.February)); got != "2024-02-29" {
			t.Errorf("EndOfMonth(Feb 2024) = %s", got)
		}
	})

	t.Run("WeekStart is Sunday", func(t *testing.T) {
		// 2025-06-15 is itself a Sunday
		if got := cal.FormatDate(cal.WeekStart(base)); got != "2025-06-15" {
			t.Errorf("WeekStart = %s", got)
		}
		wed := time.Date(2025, time.June, 18, 9, 0, 0, 0, time.UTC)
		if got := cal.FormatDate(cal.WeekStart(wed)); got != "2025-06-15" {
			t.Errorf("WeekStart(wed) = %s", got)
		}
	})
}

func TestCalendar_ParseDate(t *testing.T) {
	cal, _ := datemath.New("UTC")

	t.Run("ISO date", func(t *testing.T) {
		got, err := cal.ParseDate("2025-03-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.FormatDate(got) != "2025-03-01" {
			t.Errorf("got %s", cal.FormatDate(got))
		}
	})

	t.Run("RFC3339 datetime", func(t *testing.T) {
		got, err := cal.ParseDate("2025-03-01T15:04:05Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.FormatDate(got) != "2025-03-01" {
			t.Errorf("got %s", cal.FormatDate(got))
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := cal.ParseDate("not-a-date"); err == nil {
			t.Errorf("expected parse error")
		}
	})
}

func TestCalendar_MonthsBetween(t *testing.T) {
	cal, _ := datemath.New("UTC")
	a := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	if got := cal.MonthsBetween(a, b); got != 19 {
		t.Errorf("MonthsBetween = %d, want 19", got)
	}
	if got := cal.MonthsBetween(b, a); got != -19 {
		t.Errorf("MonthsBetween reversed = %d, want -19", got)
	}
}
