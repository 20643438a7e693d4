package http

import (
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Start      string `form:"start"`
	End        string `form:"end"`
	Months     int    `form:"months"`
	MaxResults int64  `form:"max_results"`
}

func (r listReq) toInput() calendar.ListInput {
	return calendar.ListInput{
		Start:      r.Start,
		End:        r.End,
		Months:     r.Months,
		MaxResults: r.MaxResults,
	}
}

type eventBody struct {
	Summary     string               `json:"summary"`
	Description string               `json:"description"`
	Location    string               `json:"location"`
	Start       *model.EventDateTime `json:"start"`
	End         *model.EventDateTime `json:"end"`
	Attendees   []string             `json:"attendees"`
	Recurrence  []string             `json:"recurrence"`
}

type createReq struct {
	eventBody
}

func deref(dt *model.EventDateTime) model.EventDateTime {
	if dt == nil {
		return model.EventDateTime{}
	}
	return *dt
}

func (r createReq) toInput() calendar.CreateInput {
	return calendar.CreateInput{
		Summary:     r.Summary,
		Description: r.Description,
		Location:    r.Location,
		Start:       deref(r.Start),
		End:         deref(r.End),
		Attendees:   r.Attendees,
		Recurrence:  r.Recurrence,
	}
}

type updateReq struct {
	ID string `json:"-"` // populated from URI param
	eventBody
}

func (r updateReq) toInput() calendar.UpdateInput {
	return calendar.UpdateInput{
		ID:          r.ID,
		Summary:     r.Summary,
		Description: r.Description,
		Location:    r.Location,
		Start:       deref(r.Start),
		End:         deref(r.End),
		Attendees:   r.Attendees,
		Recurrence:  r.Recurrence,
	}
}

type batchDeleteReq struct {
	IDs []string `json:"ids" binding:"required,min=1,max=50"`
}

// --- Response DTOs ---

type eventResp struct {
	Event model.EventRef `json:"event"`
}

type batchResp struct {
	Results []calendar.BatchResult `json:"results"`
}
