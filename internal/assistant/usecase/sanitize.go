package usecase

import (
	"regexp"
	"strings"
)

var (
	fencedJSONRe = regexp.MustCompile("(?is)```json.*?```")
	fencedAnyRe  = regexp.MustCompile("(?s)```.*?```")

	actionObjRe     = regexp.MustCompile(`\{[^{}]*"action"[^{}]*\}`)
	actionsWrapRe   = regexp.MustCompile(`(?s)\{[^{}]*"actions"\s*:\s*\[.*?\]\s*\}`)
	zonedTimeObjRe  = regexp.MustCompile(`\{[^{}]*"dateTime"[^{}]*"timeZone"[^{}]*\}`)
	jsonOnlyLineRe  = regexp.MustCompile(`^\s*[\[\]{},]+\s*$`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
	leadingJunkRe   = regexp.MustCompile(`^[,\s]+`)
	trailingJunkRe  = regexp.MustCompile(`[,\s]+$`)
	bulletSpacingRe = regexp.MustCompile(`(^|\n)([-*+])\s{2,}`)
	colonBulletRe   = regexp.MustCompile(`(:)\s+(\*)\s`)
)

// SanitizeText strips action JSON artifacts out of model prose while
// keeping the surrounding natural language and markdown intact. The passes
// run in a fixed order and the whole transform is idempotent. Prose that
// merely mentions the word "action" is untouched, only brace-delimited
// JSON shapes are removed.
func SanitizeText(text string) string {
	cleaned := text

	// Fenced blocks are always structured-data artifacts in this domain.
	cleaned = fencedJSONRe.ReplaceAllString(cleaned, "")
	cleaned = fencedAnyRe.ReplaceAllString(cleaned, "")

	// Bare action objects, actions wrappers, and stray zoned-time objects
	// that escaped the fences.
	cleaned = actionObjRe.ReplaceAllString(cleaned, "")
	cleaned = actionsWrapRe.ReplaceAllString(cleaned, "")
	cleaned = zonedTimeObjRe.ReplaceAllString(cleaned, "")

	// Drop lines that are now nothing but JSON punctuation.
	lines := strings.Split(cleaned, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if jsonOnlyLineRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	cleaned = strings.Join(kept, "\n")

	cleaned = blankRunRe.ReplaceAllString(cleaned, "\n\n")
	cleaned = leadingJunkRe.ReplaceAllString(cleaned, "")
	cleaned = trailingJunkRe.ReplaceAllString(cleaned, "")

	// Markdown tidy: normalize bullet spacing and break a bullet list out
	// of the sentence introducing it.
	cleaned = bulletSpacingRe.ReplaceAllString(cleaned, "${1}${2} ")
	cleaned = colonBulletRe.ReplaceAllString(cleaned, "${1}\n${2} ")

	return strings.TrimSpace(cleaned)
}
