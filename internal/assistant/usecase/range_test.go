package usecase_test

import (
	"context"
	"errors"
	"testing"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
)

func TestInferRange(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{AccessToken: "token"}

	t.Run("Empty Query", func(t *testing.T) {
		uc := newAssistantUC(t, &mockGemini{}, &mockCalendar{})
		_, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "   "})
		if !errors.Is(err, assistant.ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("AI Path Sorted With Union", func(t *testing.T) {
		llm := &mockGemini{text: `Here is the JSON:
{"ranges":[{"start":"2025-09-01","end":"2025-09-30","reason":"September"},{"start":"2025-06-01","end":"2025-06-30","reason":"June"}],"union":{"start":"2025-06-01","end":"2025-09-30"},"strategy":"two disjoint months"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "June and September", Today: "2025-01-10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != assistant.RangeSourceAI {
			t.Errorf("source = %q, want ai", got.Source)
		}
		if len(got.Ranges) != 2 {
			t.Fatalf("expected 2 ranges, got %d", len(got.Ranges))
		}
		if got.Ranges[0].Start != "2025-06-01" || got.Ranges[1].Start != "2025-09-01" {
			t.Errorf("ranges not sorted ascending: %+v", got.Ranges)
		}
		if got.Union.Start != "2025-06-01" || got.Union.End != "2025-09-30" {
			t.Errorf("union = %+v", got.Union)
		}
		for _, r := range got.Ranges {
			if r.Start > r.End {
				t.Errorf("range %+v violates start <= end", r)
			}
		}
	})

	t.Run("Span Clamped To 18 Months", func(t *testing.T) {
		// 30-month proposal: Jan 2025 through Jun 2027.
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-01-01","end":"2025-06-30","reason":"a"},{"start":"2026-01-01","end":"2027-06-30","reason":"b"}],"strategy":"broad"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "everything", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Union.End != "2026-06-30" {
			t.Errorf("union end = %q, want 2026-06-30", got.Union.End)
		}
		if got.Ranges[len(got.Ranges)-1].End != "2026-06-30" {
			t.Errorf("last range end not clamped: %+v", got.Ranges)
		}
		if want := "broad | Clamped to 18 months"; got.Strategy != want {
			t.Errorf("strategy = %q, want %q", got.Strategy, want)
		}
	})

	t.Run("Overlapping Ranges Union Covers Max End", func(t *testing.T) {
		// The widest end sits on the first-sorted range, not the last.
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-01-01","end":"2025-12-31","reason":"year"},{"start":"2025-02-01","end":"2025-03-01","reason":"contained"}],"strategy":"x"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "this year", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Ranges) != 2 {
			t.Fatalf("expected 2 ranges, got %d", len(got.Ranges))
		}
		if got.Union.Start != "2025-01-01" || got.Union.End != "2025-12-31" {
			t.Errorf("union = %+v, want 2025-01-01..2025-12-31", got.Union)
		}
	})

	t.Run("Contained Range Cannot Escape Clamp", func(t *testing.T) {
		// 24 months on the first range; the second is contained, so the
		// last-sorted end alone looks harmless.
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-01-01","end":"2026-12-31","reason":"wide"},{"start":"2025-02-01","end":"2025-03-01","reason":"contained"}],"strategy":"x"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "everything", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Union.End != "2026-06-30" {
			t.Errorf("union end = %q, want 2026-06-30", got.Union.End)
		}
		maxEnd := ""
		for _, r := range got.Ranges {
			if r.Start > r.End {
				t.Errorf("range %+v violates start <= end", r)
			}
			if r.End > maxEnd {
				maxEnd = r.End
			}
		}
		if got.Union.End != maxEnd {
			t.Errorf("union end %q != max range end %q", got.Union.End, maxEnd)
		}
		if want := "x | Clamped to 18 months"; got.Strategy != want {
			t.Errorf("strategy = %q, want %q", got.Strategy, want)
		}
	})

	t.Run("Clamp Is Day Accurate", func(t *testing.T) {
		// 18 months and 6 days; a whole-month diff would miss it.
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-01-15","end":"2026-07-20","reason":"long"}],"strategy":"x"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "everything", Today: "2025-01-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Union.End != "2026-07-14" {
			t.Errorf("union end = %q, want 2026-07-14", got.Union.End)
		}
		if want := "x | Clamped to 18 months"; got.Strategy != want {
			t.Errorf("strategy = %q, want %q", got.Strategy, want)
		}
	})

	t.Run("Range Beyond Clamp Horizon Dropped", func(t *testing.T) {
		// The second range starts past first.start + 18 months; pulling its
		// end back would invert it, so it goes away entirely.
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-01-01","end":"2025-06-30","reason":"near"},{"start":"2027-01-01","end":"2027-06-30","reason":"far"}],"strategy":"x"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "everything", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Ranges) != 1 || got.Ranges[0].Reason != "near" {
			t.Fatalf("expected only the near range to survive: %+v", got.Ranges)
		}
		if got.Union.Start != "2025-01-01" || got.Union.End != "2025-06-30" {
			t.Errorf("union = %+v, want 2025-01-01..2025-06-30", got.Union)
		}
		if want := "x | Clamped to 18 months"; got.Strategy != want {
			t.Errorf("strategy = %q, want %q", got.Strategy, want)
		}
	})

	t.Run("Invalid Ranges Dropped Individually", func(t *testing.T) {
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-06-30","end":"2025-06-01","reason":"backwards"},{"start":"not-a-date","end":"2025-06-30","reason":"junk"},{"start":"2031-01-01","end":"2031-01-31","reason":"too far"},{"start":"2025-06-01","end":"2025-06-30","reason":"good"}],"strategy":"x"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "june", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != assistant.RangeSourceAI {
			t.Fatalf("expected ai path, got %q", got.Source)
		}
		if len(got.Ranges) != 1 || got.Ranges[0].Reason != "good" {
			t.Errorf("expected only the valid range to survive: %+v", got.Ranges)
		}
	})

	t.Run("Model Error Falls Back To Heuristic", func(t *testing.T) {
		uc := newAssistantUC(t, &mockGemini{err: errors.New("unreachable")}, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "What's on today?", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("expected heuristic fallback, got error: %v", err)
		}
		if got.Source != assistant.RangeSourceHeuristic {
			t.Errorf("source = %q, want heuristic", got.Source)
		}
		if got.Ranges[0].Start != "2025-06-15" || got.Ranges[0].End != "2025-06-15" {
			t.Errorf("unexpected fallback range: %+v", got.Ranges[0])
		}
	})

	t.Run("Prose Output Falls Back To Heuristic", func(t *testing.T) {
		uc := newAssistantUC(t, &mockGemini{text: "I cannot answer with JSON, sorry."}, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "tomorrow", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != assistant.RangeSourceHeuristic || got.Ranges[0].Reason != "Tomorrow" {
			t.Errorf("unexpected fallback: %+v", got)
		}
	})

	t.Run("Missing Ranges Field Falls Back", func(t *testing.T) {
		uc := newAssistantUC(t, &mockGemini{text: `{"strategy":"no ranges here"}`}, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "next week", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != assistant.RangeSourceHeuristic {
			t.Errorf("source = %q, want heuristic", got.Source)
		}
	})

	t.Run("All Ranges Invalid Falls Back", func(t *testing.T) {
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-07-10","end":"2025-07-01","reason":"backwards"}],"strategy":"x"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "today", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Source != assistant.RangeSourceHeuristic {
			t.Errorf("source = %q, want heuristic", got.Source)
		}
	})

	t.Run("Reason Truncated", func(t *testing.T) {
		long := make([]byte, 0, 200)
		for i := 0; i < 200; i++ {
			long = append(long, 'x')
		}
		llm := &mockGemini{text: `{"ranges":[{"start":"2025-06-01","end":"2025-06-30","reason":"` + string(long) + `"}],"strategy":"x"}`}
		uc := newAssistantUC(t, llm, &mockCalendar{})
		got, err := uc.InferRange(ctx, sc, assistant.RangeInput{Query: "june", Today: "2025-06-15"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Ranges[0].Reason) != 160 {
			t.Errorf("reason length = %d, want 160", len(got.Ranges[0].Reason))
		}
	})
}
