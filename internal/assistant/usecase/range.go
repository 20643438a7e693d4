package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
)

const (
	maxRanges       = 10
	maxReasonLen    = 160
	maxSpanMonths   = 18
	maxYearsFromNow = 3
)

// rangePayload is the JSON shape the model is asked to produce.
type rangePayload struct {
	Ranges   []assistant.DateRange `json:"ranges"`
	Strategy string                `json:"strategy"`
}

// InferRange decides the minimal calendar window(s) needed to answer the
// query. The model path is primary; every failure mode of it falls back to
// the deterministic heuristic, so the caller never sees a hard failure
// once the input is valid.
func (uc *implUseCase) InferRange(ctx context.Context, sc model.Scope, input assistant.RangeInput) (assistant.RangeResult, error) {
	if strings.TrimSpace(input.Query) == "" {
		return assistant.RangeResult{}, assistant.ErrEmptyQuery
	}

	cal := uc.cal.In(sc.Timezone)

	today := time.Now()
	if input.Today != "" {
		parsed, err := cal.ParseDate(input.Today)
		if err != nil {
			return assistant.RangeResult{}, err
		}
		today = parsed
	}
	today = cal.StartOfDay(today)
	isoToday := cal.FormatDate(today)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: rangeSystemPrompt}}},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: uc.buildRangePrompt(input, isoToday)}}},
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "InferRange: model call failed, using heuristic: %v", err)
		return HeuristicRanges(input.Query, today, cal), nil
	}

	result, ok := uc.normalizeRangeResponse(resp.Text(), today, cal)
	if !ok {
		uc.l.Warnf(ctx, "InferRange: unusable model output, using heuristic")
		return HeuristicRanges(input.Query, today, cal), nil
	}

	uc.l.Infof(ctx, "InferRange: %d range(s) %s..%s", len(result.Ranges), result.Union.Start, result.Union.End)
	return result, nil
}

// normalizeRangeResponse validates the model's JSON. Individual bad ranges
// are dropped, not the whole response; only an output with zero usable
// ranges is rejected.
func (uc *implUseCase) normalizeRangeResponse(text string, today time.Time, cal *datemath.Calendar) (assistant.RangeResult, bool) {
	match := braceRe.FindString(text)
	if match == "" {
		return assistant.RangeResult{}, false
	}

	var parsed rangePayload
	if err := json.Unmarshal([]byte(match), &parsed); err != nil {
		return assistant.RangeResult{}, false
	}
	if parsed.Ranges == nil {
		return assistant.RangeResult{}, false
	}

	if len(parsed.Ranges) > maxRanges {
		parsed.Ranges = parsed.Ranges[:maxRanges]
	}
	valid := make([]assistant.DateRange, 0, len(parsed.Ranges))
	for _, r := range parsed.Ranges {
		if nr, ok := uc.normalizeRange(r, today, cal); ok {
			valid = append(valid, nr)
		}
	}
	if len(valid) == 0 {
		return assistant.RangeResult{}, false
	}

	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Start < valid[j].Start })

	strategy := parsed.Strategy

	// Ranges may overlap, so the span runs to the max end, which is not
	// necessarily the last-sorted range's end.
	maxEnd := valid[0].End
	for _, r := range valid[1:] {
		if r.End > maxEnd {
			maxEnd = r.End
		}
	}

	// Clamp to the 18-month horizon after the first start. Ends past the
	// horizon are pulled back to it; a range starting past the horizon
	// cannot be shrunk without inverting it, so it is dropped instead.
	first, _ := cal.ParseDate(valid[0].Start)
	if horizon := cal.FormatDate(first.AddDate(0, maxSpanMonths, -1)); maxEnd > horizon {
		kept := valid[:0]
		maxEnd = ""
		for _, r := range valid {
			if r.Start > horizon {
				continue
			}
			if r.End > horizon {
				r.End = horizon
			}
			if r.End > maxEnd {
				maxEnd = r.End
			}
			kept = append(kept, r)
		}
		valid = kept
		strategy += " | Clamped to 18 months"
	}
	if strategy == "" {
		strategy = "ai"
	}

	return assistant.RangeResult{
		Ranges: valid,
		Union: assistant.RangeUnion{
			Start: valid[0].Start,
			End:   maxEnd,
		},
		Strategy: strategy,
		Source:   assistant.RangeSourceAI,
	}, true
}

// normalizeRange validates a single proposed range against today. Dates
// more than three years out are treated as implausible model output.
func (uc *implUseCase) normalizeRange(r assistant.DateRange, today time.Time, cal *datemath.Calendar) (assistant.DateRange, bool) {
	start, err := cal.ParseDate(r.Start)
	if err != nil {
		return assistant.DateRange{}, false
	}
	end, err := cal.ParseDate(r.End)
	if err != nil {
		return assistant.DateRange{}, false
	}
	if end.Before(start) {
		return assistant.DateRange{}, false
	}
	if implausible(start, today) || implausible(end, today) {
		return assistant.DateRange{}, false
	}

	reason := r.Reason
	if runes := []rune(reason); len(runes) > maxReasonLen {
		reason = string(runes[:maxReasonLen])
	}
	return assistant.DateRange{
		Start:  cal.FormatDate(start),
		End:    cal.FormatDate(end),
		Reason: reason,
	}, true
}

func implausible(t, today time.Time) bool {
	diff := t.Sub(today)
	if diff < 0 {
		diff = -diff
	}
	return diff > maxYearsFromNow*366*24*time.Hour
}
