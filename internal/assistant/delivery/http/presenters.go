package http

import (
	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/model"
)

// --- Request DTOs ---

type rangeReq struct {
	Query string `json:"query" binding:"required"`
	Today string `json:"today"`
	// Timezone overrides the scope's timezone for this inference only.
	Timezone string                      `json:"timezone"`
	Context  []model.ConversationMessage `json:"context"`
}

func (r rangeReq) toInput() assistant.RangeInput {
	return assistant.RangeInput{
		Query:   r.Query,
		Today:   r.Today,
		Context: r.Context,
	}
}

type streamReq struct {
	Query   string                      `json:"query" binding:"required"`
	Events  []model.EventRef            `json:"events"`
	Context []model.ConversationMessage `json:"context"`
}

func (r streamReq) toInput() assistant.StreamInput {
	return assistant.StreamInput{
		Query:   r.Query,
		Events:  r.Events,
		Context: r.Context,
	}
}

type executeReq struct {
	Actions []assistant.Action `json:"actions" binding:"required,min=1"`
	Events  []model.EventRef   `json:"events"`
}

func (r executeReq) toInput() assistant.ExecuteInput {
	return assistant.ExecuteInput{
		Actions: r.Actions,
		Events:  r.Events,
	}
}
