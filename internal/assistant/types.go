package assistant

import (
	"calendar-assistant/internal/model"
)

// Action verbs the assistant may embed in a reply.
const (
	ActionCreateEvent = "create_event"
	ActionUpdateEvent = "update_event"
	ActionDeleteEvent = "delete_event"
)

// Action scopes for recurring events.
const (
	ScopeInstance = "instance"
	ScopeSeries   = "series"
)

// EventAttendee is an attendee reference inside an action payload.
type EventAttendee struct {
	Email string `json:"email"`
}

// EventDraft is the event payload of a create action, and doubles as the
// partial-update payload of an update action.
type EventDraft struct {
	Summary     string               `json:"summary,omitempty"`
	Description string               `json:"description,omitempty"`
	Location    string               `json:"location,omitempty"`
	Start       *model.EventDateTime `json:"start,omitempty"`
	End         *model.EventDateTime `json:"end,omitempty"`
	Attendees   []EventAttendee      `json:"attendees,omitempty"`
	Recurrence  []string             `json:"recurrence,omitempty"`
}

// EventTarget identifies the event an update or delete applies to. ID wins;
// otherwise Summary (+ optional Start) is matched against the event snapshot.
type EventTarget struct {
	ID      string `json:"id,omitempty"`
	Summary string `json:"summary,omitempty"`
	Start   string `json:"start,omitempty"`
}

// Action is one calendar mutation embedded by the model in its reply text.
type Action struct {
	Action  string       `json:"action"`
	Scope   string       `json:"scope,omitempty"` // "instance" (default) or "series"
	Event   *EventDraft  `json:"event,omitempty"`
	Target  *EventTarget `json:"target,omitempty"`
	Updates *EventDraft  `json:"updates,omitempty"`
}

// DateRange is one inclusive date interval the assistant needs calendar data
// for.
type DateRange struct {
	Start  string `json:"start"` // YYYY-MM-DD
	End    string `json:"end"`   // YYYY-MM-DD
	Reason string `json:"reason"`
}

// RangeUnion is the min-start/max-end envelope over a set of ranges.
type RangeUnion struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Range result sources.
const (
	RangeSourceAI        = "ai"
	RangeSourceHeuristic = "heuristic"
)

// RangeResult is the date-range inference response.
type RangeResult struct {
	Ranges   []DateRange `json:"ranges"`
	Union    RangeUnion  `json:"union"`
	Strategy string      `json:"strategy"`
	Source   string      `json:"source"`
}

// RangeInput is the input for date-range inference.
type RangeInput struct {
	Query string
	Today string // optional YYYY-MM-DD override, defaults to now
	// Context is the conversation tail; only the last few turns are sent
	// to the model.
	Context []model.ConversationMessage
}

// StreamInput is the input for one streamed chat turn.
type StreamInput struct {
	Query   string
	Events  []model.EventRef
	Context []model.ConversationMessage
}

// StreamFrame is one framed message of the chat stream. Exactly one field
// group is populated: Delta, Type+Actions, or Error. The terminal marker is
// written by the delivery layer.
type StreamFrame struct {
	Delta   string   `json:"delta,omitempty"`
	Type    string   `json:"type,omitempty"`
	Actions []Action `json:"actions,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// FrameTypeActions marks the frame carrying the extracted action list.
const FrameTypeActions = "actions"

// EmitFunc receives stream frames in order. Returning an error aborts the
// turn (the client went away).
type EmitFunc func(frame StreamFrame) error

// ExecuteInput is the input for applying an extracted action list.
type ExecuteInput struct {
	Actions []Action
	// Events is the snapshot used to resolve id-less targets. It must be
	// the same snapshot the actions were generated against.
	Events []model.EventRef
}

// Action execution statuses.
const (
	StatusCreated    = "created"
	StatusUpdated    = "updated"
	StatusDeleted    = "deleted"
	StatusUnresolved = "unresolved"
	StatusFailed     = "failed"
	StatusSkipped    = "skipped"
)

// ActionResult is the per-action outcome of one execution turn.
type ActionResult struct {
	Action  string `json:"action"`
	EventID string `json:"event_id,omitempty"`
	Summary string `json:"summary,omitempty"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
}

// ExecutionLog is the outcome of executing one turn's actions. Refresh tells
// the client to refetch its calendar window; the backend is the source of
// truth after any mutation attempt.
type ExecutionLog struct {
	TurnID  string         `json:"turn_id"`
	Results []ActionResult `json:"results"`
	Refresh bool           `json:"refresh"`
}
