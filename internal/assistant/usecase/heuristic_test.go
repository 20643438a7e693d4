package usecase_test

import (
	"testing"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/assistant/usecase"
	"calendar-assistant/pkg/datemath"
)

func TestHeuristicRanges(t *testing.T) {
	cal, err := datemath.New("UTC")
	if err != nil {
		t.Fatalf("datemath.New: %v", err)
	}
	day := func(s string) time.Time {
		d, err := cal.ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		return d
	}

	check := func(t *testing.T, got assistant.RangeResult, start, end, reason string) {
		t.Helper()
		if len(got.Ranges) != 1 {
			t.Fatalf("expected exactly one range, got %d", len(got.Ranges))
		}
		r := got.Ranges[0]
		if r.Start != start || r.End != end || r.Reason != reason {
			t.Errorf("got {%s %s %q}, want {%s %s %q}", r.Start, r.End, r.Reason, start, end, reason)
		}
		if got.Union.Start != start || got.Union.End != end {
			t.Errorf("union = %+v, want %s..%s", got.Union, start, end)
		}
		if got.Source != assistant.RangeSourceHeuristic {
			t.Errorf("source = %q", got.Source)
		}
	}

	t.Run("Today", func(t *testing.T) {
		got := usecase.HeuristicRanges("What's on today?", day("2025-06-15"), cal)
		check(t, got, "2025-06-15", "2025-06-15", "Today only")
	})

	t.Run("Referenced Months Merge", func(t *testing.T) {
		got := usecase.HeuristicRanges("Show me June and September", day("2025-01-10"), cal)
		check(t, got, "2025-06-01", "2025-09-30", "Referenced months")
	})

	t.Run("Past Month Rolls To Next Year", func(t *testing.T) {
		// In September a bare "February" means next February.
		got := usecase.HeuristicRanges("anything in february?", day("2025-09-10"), cal)
		check(t, got, "2026-02-01", "2026-02-28", "Referenced months")
	})

	t.Run("Explicit Year Wins", func(t *testing.T) {
		got := usecase.HeuristicRanges("what happened in february 2024", day("2025-09-10"), cal)
		check(t, got, "2024-02-01", "2024-02-29", "Referenced months")
	})

	t.Run("Next N Months", func(t *testing.T) {
		got := usecase.HeuristicRanges("next 3 months please", day("2025-06-15"), cal)
		check(t, got, "2025-06-15", "2025-09-30", "Next 3 months")
	})

	t.Run("Next N Months Clamped", func(t *testing.T) {
		got := usecase.HeuristicRanges("next 40 months", day("2025-06-15"), cal)
		check(t, got, "2025-06-15", "2026-06-30", "Next 12 months")
	})

	t.Run("Next Year", func(t *testing.T) {
		got := usecase.HeuristicRanges("what about next year", day("2025-06-15"), cal)
		check(t, got, "2025-06-15", "2026-06-30", "Next year")
	})

	t.Run("This Week Starts Sunday", func(t *testing.T) {
		// 2025-06-18 is a Wednesday; the containing week starts Sunday the 15th.
		got := usecase.HeuristicRanges("what's this week like", day("2025-06-18"), cal)
		check(t, got, "2025-06-15", "2025-06-21", "This week")
	})

	t.Run("Tomorrow", func(t *testing.T) {
		got := usecase.HeuristicRanges("am I free tomorrow", day("2025-06-15"), cal)
		check(t, got, "2025-06-16", "2025-06-16", "Tomorrow")
	})

	t.Run("Upcoming", func(t *testing.T) {
		got := usecase.HeuristicRanges("what's upcoming for me", day("2025-06-15"), cal)
		check(t, got, "2025-06-08", "2025-09-15", "Recent past + 3 months ahead")
	})

	t.Run("Default Window", func(t *testing.T) {
		got := usecase.HeuristicRanges("hello there", day("2025-06-15"), cal)
		check(t, got, "2025-06-12", "2025-07-15", "Default small window")
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := usecase.HeuristicRanges("Show me June and September", day("2025-01-10"), cal)
		b := usecase.HeuristicRanges("Show me June and September", day("2025-01-10"), cal)
		if a.Ranges[0] != b.Ranges[0] || a.Union != b.Union {
			t.Errorf("heuristic not deterministic: %+v vs %+v", a, b)
		}
	})
}
