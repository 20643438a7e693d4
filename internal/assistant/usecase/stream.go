package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gemini"
)

// StreamChat runs one chat turn. The model call is a single blocking
// request; its full reply is re-chunked line by line so the client sees
// prose early, then at most one actions frame with whatever the extractor
// found. Actions are derived from the complete text, never from partial
// deltas. A returned error means nothing more will be emitted; the
// delivery layer turns it into an error frame before the terminal marker.
func (uc *implUseCase) StreamChat(ctx context.Context, sc model.Scope, input assistant.StreamInput, emit assistant.EmitFunc) error {
	if strings.TrimSpace(input.Query) == "" {
		return assistant.ErrEmptyQuery
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: uc.buildChatPrompt(input)}}},
		},
		Tools: []gemini.Tool{{GoogleSearch: &gemini.GoogleSearch{}}},
	})
	if err != nil {
		return fmt.Errorf("model call failed: %w", err)
	}

	fullText := resp.Text()
	actions := ExtractActions(fullText)
	sanitized := SanitizeText(fullText)

	for _, line := range strings.Split(sanitized, "\n") {
		if err := emit(assistant.StreamFrame{Delta: line + "\n"}); err != nil {
			return err
		}
	}

	if len(actions) > 0 {
		if err := emit(assistant.StreamFrame{Type: assistant.FrameTypeActions, Actions: actions}); err != nil {
			return err
		}
	}

	uc.l.Infof(ctx, "StreamChat: %d action(s), %d chars of prose", len(actions), len(sanitized))
	return nil
}
