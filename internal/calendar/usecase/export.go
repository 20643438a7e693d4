package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// ExportICS renders the window as an iCalendar document.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope, input calendar.ListInput) ([]byte, error) {
	out, err := uc.List(ctx, sc, input)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//calendar-assistant//EN")

	now := time.Now()
	for _, ev := range out.Events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(now)
		ve.SetSummary(ev.Summary)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if err := uc.setEventTimes(ve, ev); err != nil {
			uc.l.Warnf(ctx, "ExportICS: skipping times for event %s: %v", ev.ID, err)
		}
		for _, rule := range ev.Recurrence {
			if strings.HasPrefix(rule, "RRULE:") {
				ve.AddRrule(strings.TrimPrefix(rule, "RRULE:"))
			}
		}
	}

	uc.l.Infof(ctx, "ExportICS: exported %d events", out.Count)
	return []byte(cal.Serialize()), nil
}

func (uc *implUseCase) setEventTimes(ve *ical.VEvent, ev model.EventRef) error {
	if ev.Start == nil || ev.End == nil {
		return fmt.Errorf("event has no boundaries")
	}

	if ev.Start.Date != "" {
		start, err := uc.cal.ParseDate(ev.Start.Date)
		if err != nil {
			return err
		}
		end, err := uc.cal.ParseDate(ev.End.Date)
		if err != nil {
			return err
		}
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(end)
		return nil
	}

	start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
	if err != nil {
		return err
	}
	end, err := time.Parse(time.RFC3339, ev.End.DateTime)
	if err != nil {
		return err
	}
	ve.SetStartAt(start)
	ve.SetEndAt(end)
	return nil
}
