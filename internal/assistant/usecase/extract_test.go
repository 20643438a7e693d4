package usecase_test

import (
	"testing"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/assistant/usecase"
)

func TestExtractActions(t *testing.T) {
	t.Run("Empty Text", func(t *testing.T) {
		if got := usecase.ExtractActions(""); len(got) != 0 {
			t.Errorf("expected no actions, got %d", len(got))
		}
	})

	t.Run("Prose Only", func(t *testing.T) {
		if got := usecase.ExtractActions("Sure, your schedule is clear next week."); len(got) != 0 {
			t.Errorf("expected no actions, got %d", len(got))
		}
	})

	t.Run("Single Fenced Action", func(t *testing.T) {
		text := "Done.\n```json\n{\"action\":\"delete_event\",\"target\":{\"summary\":\"Standup\"}}\n```"
		got := usecase.ExtractActions(text)
		if len(got) != 1 {
			t.Fatalf("expected 1 action, got %d", len(got))
		}
		if got[0].Action != assistant.ActionDeleteEvent || got[0].Target.Summary != "Standup" {
			t.Errorf("unexpected action: %+v", got[0])
		}
	})

	t.Run("Untagged Fence", func(t *testing.T) {
		text := "```\n{\"action\":\"create_event\",\"event\":{\"summary\":\"Lunch\",\"start\":{\"date\":\"2025-07-01\"},\"end\":{\"date\":\"2025-07-01\"}}}\n```"
		got := usecase.ExtractActions(text)
		if len(got) != 1 {
			t.Fatalf("expected 1 action, got %d", len(got))
		}
		if got[0].Event == nil || got[0].Event.Summary != "Lunch" {
			t.Errorf("unexpected event: %+v", got[0].Event)
		}
	})

	t.Run("Brace Fallback Without Fence", func(t *testing.T) {
		text := `I'll remove it. {"action":"delete_event","target":{"id":"abc123"}}`
		got := usecase.ExtractActions(text)
		if len(got) != 1 {
			t.Fatalf("expected 1 action, got %d", len(got))
		}
		if got[0].Target.ID != "abc123" {
			t.Errorf("unexpected target: %+v", got[0].Target)
		}
	})

	t.Run("Wrapper Flattens To Two", func(t *testing.T) {
		text := "```json\n{\"actions\":[{\"action\":\"delete_event\",\"target\":{\"summary\":\"A\"}},{\"action\":\"delete_event\",\"target\":{\"summary\":\"B\"}}]}\n```"
		got := usecase.ExtractActions(text)
		if len(got) != 2 {
			t.Fatalf("expected flat list of 2 actions, got %d", len(got))
		}
		if got[0].Target.Summary != "A" || got[1].Target.Summary != "B" {
			t.Errorf("unexpected order: %+v", got)
		}
	})

	t.Run("Array Of Actions", func(t *testing.T) {
		text := "```json\n[{\"action\":\"delete_event\",\"target\":{\"summary\":\"A\"}},{\"action\":\"create_event\",\"event\":{\"summary\":\"B\",\"start\":{\"date\":\"2025-07-01\"},\"end\":{\"date\":\"2025-07-01\"}}}]\n```"
		got := usecase.ExtractActions(text)
		if len(got) != 2 {
			t.Fatalf("expected 2 actions, got %d", len(got))
		}
	})

	t.Run("Duplicate Collapses To One", func(t *testing.T) {
		action := "{\"action\":\"delete_event\",\"target\":{\"summary\":\"Standup\"}}"
		text := "```json\n" + action + "\n```\nAnd again:\n```json\n" + action + "\n```"
		got := usecase.ExtractActions(text)
		if len(got) != 1 {
			t.Fatalf("expected duplicate to collapse to 1, got %d", len(got))
		}
	})

	t.Run("Bare Event Shape Implies Create", func(t *testing.T) {
		text := "```json\n{\"summary\":\"Dentist\",\"start\":{\"date\":\"2025-08-01\"},\"end\":{\"date\":\"2025-08-01\"}}\n```"
		got := usecase.ExtractActions(text)
		if len(got) != 1 {
			t.Fatalf("expected 1 action, got %d", len(got))
		}
		if got[0].Action != assistant.ActionCreateEvent {
			t.Errorf("expected implicit create_event, got %q", got[0].Action)
		}
		if got[0].Event == nil || got[0].Event.Summary != "Dentist" {
			t.Errorf("unexpected event: %+v", got[0].Event)
		}
	})

	t.Run("Unrelated JSON Ignored", func(t *testing.T) {
		text := "```json\n{\"temperature\": 21, \"unit\": \"C\"}\n```"
		if got := usecase.ExtractActions(text); len(got) != 0 {
			t.Errorf("expected unrelated object ignored, got %+v", got)
		}
	})

	t.Run("Malformed Candidate Dropped", func(t *testing.T) {
		text := "```json\n{\"action\": \"delete_event\", target\": }\n```"
		if got := usecase.ExtractActions(text); len(got) != 0 {
			t.Errorf("expected malformed JSON dropped, got %+v", got)
		}
	})

	t.Run("First Seen Order Stable", func(t *testing.T) {
		text := "```json\n{\"action\":\"delete_event\",\"target\":{\"summary\":\"First\"}}\n```\n" +
			"```json\n{\"action\":\"create_event\",\"event\":{\"summary\":\"Second\",\"start\":{\"date\":\"2025-07-01\"},\"end\":{\"date\":\"2025-07-01\"}}}\n```"
		got := usecase.ExtractActions(text)
		if len(got) != 2 {
			t.Fatalf("expected 2 actions, got %d", len(got))
		}
		if got[0].Action != assistant.ActionDeleteEvent || got[1].Action != assistant.ActionCreateEvent {
			t.Errorf("unexpected order: %+v", got)
		}
	})
}
