package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// ExecuteActions resolves each action against the event snapshot and
// dispatches it to the calendar backend. When a turn carries two or more
// creates, or two or more resolved deletes, those go out as one batched
// call instead of N sequential ones. Everything is best effort: one
// action's failure never blocks its siblings, and unresolved targets are
// logged rather than attempted. Results keep the input order.
func (uc *implUseCase) ExecuteActions(ctx context.Context, sc model.Scope, input assistant.ExecuteInput) (assistant.ExecutionLog, error) {
	if len(input.Actions) == 0 {
		return assistant.ExecutionLog{}, assistant.ErrNoActions
	}

	turnID := uuid.NewString()
	results := make([]assistant.ActionResult, len(input.Actions))

	var createIdx, deleteIdx []int
	deleteIDs := map[int]string{}

	// Classification pass: resolve targets and pre-fill every result that
	// needs no backend call.
	for i, act := range input.Actions {
		switch act.Action {
		case assistant.ActionCreateEvent:
			if act.Event == nil {
				results[i] = assistant.ActionResult{Action: act.Action, Status: assistant.StatusSkipped, Detail: "missing event payload"}
				continue
			}
			createIdx = append(createIdx, i)

		case assistant.ActionUpdateEvent, assistant.ActionDeleteEvent:
			id := resolveTarget(act, input.Events)
			if id == "" {
				results[i] = assistant.ActionResult{
					Action:  act.Action,
					Summary: targetSummary(act.Target),
					Status:  assistant.StatusUnresolved,
					Detail:  "no matching event in snapshot",
				}
				continue
			}
			if act.Action == assistant.ActionDeleteEvent {
				deleteIdx = append(deleteIdx, i)
				deleteIDs[i] = id
			} else {
				results[i] = uc.dispatchUpdate(ctx, sc, act, id)
			}

		default:
			results[i] = assistant.ActionResult{Action: act.Action, Status: assistant.StatusSkipped, Detail: "unknown action"}
		}
	}

	uc.dispatchCreates(ctx, sc, input.Actions, createIdx, results)
	uc.dispatchDeletes(ctx, sc, deleteIdx, deleteIDs, results)

	uc.l.Infof(ctx, "ExecuteActions: turn=%s %d action(s)", turnID, len(input.Actions))
	return assistant.ExecutionLog{TurnID: turnID, Results: results, Refresh: true}, nil
}

func (uc *implUseCase) dispatchCreates(ctx context.Context, sc model.Scope, actions []assistant.Action, createIdx []int, results []assistant.ActionResult) {
	if len(createIdx) == 0 {
		return
	}

	if len(createIdx) == 1 {
		i := createIdx[0]
		created, err := uc.calendar.Create(ctx, sc, toCreateInput(actions[i].Event))
		results[i] = createResult(actions[i].Event.Summary, created.ID, err)
		return
	}

	inputs := lo.Map(createIdx, func(i int, _ int) calendar.CreateInput {
		return toCreateInput(actions[i].Event)
	})
	batch, err := uc.calendar.CreateBatch(ctx, sc, inputs)
	if err != nil {
		for _, i := range createIdx {
			results[i] = createResult(actions[i].Event.Summary, "", err)
		}
		return
	}
	for n, item := range batch {
		i := createIdx[n]
		results[i] = assistant.ActionResult{
			Action:  assistant.ActionCreateEvent,
			EventID: item.EventID,
			Summary: actions[i].Event.Summary,
			Status:  assistant.StatusCreated,
		}
		if !item.OK() {
			results[i].Status = assistant.StatusFailed
			results[i].Detail = item.Error
		}
	}
}

func (uc *implUseCase) dispatchDeletes(ctx context.Context, sc model.Scope, deleteIdx []int, deleteIDs map[int]string, results []assistant.ActionResult) {
	if len(deleteIdx) == 0 {
		return
	}

	if len(deleteIdx) == 1 {
		i := deleteIdx[0]
		err := uc.calendar.Delete(ctx, sc, deleteIDs[i])
		results[i] = assistant.ActionResult{Action: assistant.ActionDeleteEvent, EventID: deleteIDs[i], Status: assistant.StatusDeleted}
		if err != nil {
			results[i].Status = assistant.StatusFailed
			results[i].Detail = err.Error()
		}
		return
	}

	ids := lo.Map(deleteIdx, func(i int, _ int) string { return deleteIDs[i] })
	batch, err := uc.calendar.DeleteBatch(ctx, sc, ids)
	if err != nil {
		for _, i := range deleteIdx {
			results[i] = assistant.ActionResult{Action: assistant.ActionDeleteEvent, EventID: deleteIDs[i], Status: assistant.StatusFailed, Detail: err.Error()}
		}
		return
	}
	for n, item := range batch {
		i := deleteIdx[n]
		results[i] = assistant.ActionResult{
			Action:  assistant.ActionDeleteEvent,
			EventID: deleteIDs[i],
			Status:  assistant.StatusDeleted,
		}
		if !item.OK() {
			results[i].Status = assistant.StatusFailed
			results[i].Detail = item.Error
		}
	}
}

func (uc *implUseCase) dispatchUpdate(ctx context.Context, sc model.Scope, act assistant.Action, id string) assistant.ActionResult {
	updated, err := uc.calendar.Update(ctx, sc, toUpdateInput(id, act.Updates))
	result := assistant.ActionResult{
		Action:  assistant.ActionUpdateEvent,
		EventID: id,
		Summary: updated.Summary,
		Status:  assistant.StatusUpdated,
	}
	if err != nil {
		result.Summary = targetSummary(act.Target)
		result.Status = assistant.StatusFailed
		result.Detail = err.Error()
	}
	return result
}

// resolveTarget maps a target to an event id. An explicit id wins;
// otherwise the snapshot is scanned for the first event whose summary
// matches, and whose start boundary matches when the target names one.
// With series scope a recurring instance resolves to its parent series.
func resolveTarget(act assistant.Action, events []model.EventRef) string {
	t := act.Target
	if t == nil {
		return ""
	}
	if t.ID != "" {
		return t.ID
	}
	if t.Summary == "" {
		return ""
	}

	match, ok := lo.Find(events, func(ev model.EventRef) bool {
		if ev.Summary != t.Summary {
			return false
		}
		if t.Start != "" {
			return ev.Start != nil && ev.Start.Value() == t.Start
		}
		return true
	})
	if !ok {
		return ""
	}
	if act.Scope == assistant.ScopeSeries && match.RecurringEventID != "" {
		return match.RecurringEventID
	}
	return match.ID
}

func targetSummary(t *assistant.EventTarget) string {
	if t == nil {
		return ""
	}
	return t.Summary
}

func createResult(summary, id string, err error) assistant.ActionResult {
	result := assistant.ActionResult{
		Action:  assistant.ActionCreateEvent,
		EventID: id,
		Summary: summary,
		Status:  assistant.StatusCreated,
	}
	if err != nil {
		result.Status = assistant.StatusFailed
		result.Detail = err.Error()
	}
	return result
}

func toCreateInput(draft *assistant.EventDraft) calendar.CreateInput {
	return calendar.CreateInput{
		Summary:     draft.Summary,
		Description: draft.Description,
		Location:    draft.Location,
		Start:       derefDateTime(draft.Start),
		End:         derefDateTime(draft.End),
		Attendees:   attendeeEmails(draft.Attendees),
		Recurrence:  draft.Recurrence,
	}
}

func toUpdateInput(id string, updates *assistant.EventDraft) calendar.UpdateInput {
	if updates == nil {
		updates = &assistant.EventDraft{}
	}
	return calendar.UpdateInput{
		ID:          id,
		Summary:     updates.Summary,
		Description: updates.Description,
		Location:    updates.Location,
		Start:       derefDateTime(updates.Start),
		End:         derefDateTime(updates.End),
		Attendees:   attendeeEmails(updates.Attendees),
		Recurrence:  updates.Recurrence,
	}
}

func derefDateTime(dt *model.EventDateTime) model.EventDateTime {
	if dt == nil {
		return model.EventDateTime{}
	}
	return *dt
}

func attendeeEmails(attendees []assistant.EventAttendee) []string {
	if len(attendees) == 0 {
		return nil
	}
	return lo.Map(attendees, func(a assistant.EventAttendee, _ int) string { return a.Email })
}
