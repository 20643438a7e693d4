package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/datemath"
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var (
	monthRefRe   = regexp.MustCompile(`\b(` + strings.Join(monthNames, "|") + `)(?:\s+(\d{4}))?`)
	nextMonthsRe = regexp.MustCompile(`next\s+(\d+)\s+month`)
	nextYearRe   = regexp.MustCompile(`next\s+year`)
	thisWeekRe   = regexp.MustCompile(`this\s+week`)
	todayRe      = regexp.MustCompile(`today|now`)
	tomorrowRe   = regexp.MustCompile(`tomorrow`)
	nextWeekRe   = regexp.MustCompile(`next\s+week`)
	upcomingRe   = regexp.MustCompile(`upcoming|plan|schedule|what.*coming`)
)

type monthRef struct {
	month time.Month
	year  int
}

// HeuristicRanges derives a calendar window from the query text alone. It
// is the deterministic fallback for when the model path is unusable: a
// pure function of the query and today, no network. Named months win over
// every relative pattern; the relative patterns are tried in a fixed
// priority order and the first match decides the window.
func HeuristicRanges(query string, today time.Time, cal *datemath.Calendar) assistant.RangeResult {
	lower := strings.ToLower(query)
	today = cal.StartOfDay(today)

	var r assistant.DateRange
	switch {
	case monthRefRe.MatchString(lower):
		min, max := referencedMonths(lower, today)
		r = assistant.DateRange{
			Start:  cal.FormatDate(cal.StartOfMonth(min.year, min.month)),
			End:    cal.FormatDate(cal.EndOfMonth(max.year, max.month)),
			Reason: "Referenced months",
		}

	case nextMonthsRe.MatchString(lower):
		n, _ := strconv.Atoi(nextMonthsRe.FindStringSubmatch(lower)[1])
		if n < 1 {
			n = 1
		}
		if n > 12 {
			n = 12
		}
		r = assistant.DateRange{
			Start:  cal.FormatDate(today),
			End:    cal.FormatDate(cal.EndOfMonth(today.Year(), today.Month()+time.Month(n))),
			Reason: fmt.Sprintf("Next %d months", n),
		}

	case nextYearRe.MatchString(lower):
		r = assistant.DateRange{
			Start:  cal.FormatDate(today),
			End:    cal.FormatDate(cal.EndOfMonth(today.Year()+1, today.Month())),
			Reason: "Next year",
		}

	case thisWeekRe.MatchString(lower):
		weekStart := cal.WeekStart(today)
		r = assistant.DateRange{
			Start:  cal.FormatDate(weekStart),
			End:    cal.FormatDate(cal.AddDays(weekStart, 6)),
			Reason: "This week",
		}

	case todayRe.MatchString(lower):
		r = assistant.DateRange{
			Start:  cal.FormatDate(today),
			End:    cal.FormatDate(today),
			Reason: "Today only",
		}

	case tomorrowRe.MatchString(lower):
		t := cal.AddDays(today, 1)
		r = assistant.DateRange{
			Start:  cal.FormatDate(t),
			End:    cal.FormatDate(t),
			Reason: "Tomorrow",
		}

	case nextWeekRe.MatchString(lower):
		nextStart := cal.AddDays(cal.WeekStart(today), 7)
		r = assistant.DateRange{
			Start:  cal.FormatDate(nextStart),
			End:    cal.FormatDate(cal.AddDays(nextStart, 6)),
			Reason: "Next week",
		}

	case upcomingRe.MatchString(lower):
		r = assistant.DateRange{
			Start:  cal.FormatDate(cal.AddDays(today, -7)),
			End:    cal.FormatDate(today.AddDate(0, 3, 0)),
			Reason: "Recent past + 3 months ahead",
		}

	default:
		r = assistant.DateRange{
			Start:  cal.FormatDate(cal.AddDays(today, -3)),
			End:    cal.FormatDate(today.AddDate(0, 1, 0)),
			Reason: "Default small window",
		}
	}

	return assistant.RangeResult{
		Ranges:   []assistant.DateRange{r},
		Union:    assistant.RangeUnion{Start: r.Start, End: r.End},
		Strategy: "heuristic",
		Source:   assistant.RangeSourceHeuristic,
	}
}

// referencedMonths collects every named month (with optional explicit
// year) and returns the earliest and latest. A month more than one month
// in the past with no explicit year is taken to mean next year.
func referencedMonths(lower string, today time.Time) (min, max monthRef) {
	var found []monthRef
	for _, m := range monthRefRe.FindAllStringSubmatch(lower, -1) {
		idx := monthIndex(m[1])
		year := inferYear(idx, today)
		if m[2] != "" {
			year, _ = strconv.Atoi(m[2])
		}
		found = append(found, monthRef{month: idx, year: year})
	}

	min, max = found[0], found[0]
	for _, ref := range found[1:] {
		if ref.year < min.year || (ref.year == min.year && ref.month < min.month) {
			min = ref
		}
		if ref.year > max.year || (ref.year == max.year && ref.month > max.month) {
			max = ref
		}
	}
	return min, max
}

func monthIndex(name string) time.Month {
	for i, m := range monthNames {
		if m == name {
			return time.Month(i + 1)
		}
	}
	return time.January
}

func inferYear(month time.Month, today time.Time) int {
	if month < today.Month()-1 {
		return today.Year() + 1
	}
	return today.Year()
}
