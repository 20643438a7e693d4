package usecase

import (
	"encoding/json"
	"regexp"

	"calendar-assistant/internal/assistant"
)

var (
	fenceRe = regexp.MustCompile("(?s)```(?:json)?\n(.*?)```")
	braceRe = regexp.MustCompile(`(?s)(\{.*\}|\[.*\])`)
)

// ExtractActions scans free text for embedded calendar-action JSON and
// returns the flattened, de-duplicated action list in first-seen order.
// Fenced code blocks are the candidates; without any fence, the widest
// brace- or bracket-delimited substring is tried instead. Unparseable
// candidates are dropped silently, malformed model output is expected.
func ExtractActions(text string) []assistant.Action {
	var candidates []string
	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	if len(candidates) == 0 {
		if m := braceRe.FindString(text); m != "" {
			candidates = append(candidates, m)
		}
	}

	actions := []assistant.Action{}
	seen := map[string]struct{}{}
	for _, c := range candidates {
		var parsed any
		if err := json.Unmarshal([]byte(c), &parsed); err != nil {
			continue
		}
		actions = collect(parsed, actions, seen)
	}
	return actions
}

// collect normalizes one parsed JSON value, recursing through arrays and
// {"actions":[...]} wrappers and appending every action it finds.
func collect(parsed any, actions []assistant.Action, seen map[string]struct{}) []assistant.Action {
	switch v := parsed.(type) {
	case []any:
		for _, item := range v {
			actions = collect(item, actions, seen)
		}
	case map[string]any:
		if wrapped, ok := v["actions"].([]any); ok {
			for _, item := range wrapped {
				actions = collect(item, actions, seen)
			}
		}
		act, ok := normalizeAction(v)
		if !ok {
			return actions
		}
		key, err := json.Marshal(act)
		if err != nil {
			return actions
		}
		if _, dup := seen[string(key)]; dup {
			return actions
		}
		seen[string(key)] = struct{}{}
		actions = append(actions, act)
	}
	return actions
}

// normalizeAction decodes one object into the typed action union, trying
// the variants in fixed priority order: a tagged action object (the tag is
// "action", with "type" accepted as an alias), then a bare event-shaped
// object which implies create_event. Anything else is not an action.
func normalizeAction(obj map[string]any) (assistant.Action, bool) {
	_, hasAction := obj["action"]
	_, hasType := obj["type"]
	if hasAction || hasType {
		raw, err := json.Marshal(obj)
		if err != nil {
			return assistant.Action{}, false
		}
		var act assistant.Action
		if err := json.Unmarshal(raw, &act); err != nil {
			return assistant.Action{}, false
		}
		if act.Action == "" {
			if alias, ok := obj["type"].(string); ok {
				act.Action = alias
			}
		}
		return act, act.Action != ""
	}

	if _, ok := obj["summary"]; ok {
		_, hasStart := obj["start"]
		_, hasEnd := obj["end"]
		if hasStart || hasEnd {
			raw, err := json.Marshal(obj)
			if err != nil {
				return assistant.Action{}, false
			}
			var draft assistant.EventDraft
			if err := json.Unmarshal(raw, &draft); err != nil {
				return assistant.Action{}, false
			}
			return assistant.Action{Action: assistant.ActionCreateEvent, Event: &draft}, true
		}
	}
	return assistant.Action{}, false
}
