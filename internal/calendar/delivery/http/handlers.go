package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// List godoc
// @Summary     List calendar events
// @Description Returns the events of a date window, expanding recurring events.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       token       header string true  "Google OAuth access token"
// @Param       start       query  string false "Inclusive start date (YYYY-MM-DD)"
// @Param       end         query  string false "Inclusive end date (YYYY-MM-DD)"
// @Param       months      query  int    false "Symmetric window of N months each side of today (1-12)"
// @Param       max_results query  int    false "Event cap (default 500, max 2500)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// Create godoc
// @Summary     Create a calendar event
// @Description Creates one event. Summary, start, and end are required.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       token header string true "Google OAuth access token"
// @Param       body  body   createReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, eventResp{Event: created})
}

// Update godoc
// @Summary     Update a calendar event
// @Description Applies a partial update. Omitted fields are left untouched.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       token header string true "Google OAuth access token"
// @Param       id    path   string true "Event ID"
// @Param       body  body   updateReq true "Fields to update"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, eventResp{Event: updated})
}

// Delete godoc
// @Summary     Delete a calendar event
// @Description Removes one event by ID.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       token header string true "Google OAuth access token"
// @Param       id    path   string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// BatchDelete godoc
// @Summary     Delete several calendar events
// @Description Removes events by ID with per-item results. One failure does not abort the rest.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       token header string true "Google OAuth access token"
// @Param       body  body   batchDeleteReq true "Event IDs"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/events/batch-delete [POST]
func (h *handler) BatchDelete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	results, err := h.uc.DeleteBatch(ctx, middleware.GetScope(c), req.IDs)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, batchResp{Results: results})
}

// Export godoc
// @Summary     Export a window as iCalendar
// @Description Renders the selected window as an ICS document.
// @Tags        Calendar
// @Produce     text/calendar
// @Param       token  header string true  "Google OAuth access token"
// @Param       start  query  string false "Inclusive start date (YYYY-MM-DD)"
// @Param       end    query  string false "Inclusive end date (YYYY-MM-DD)"
// @Param       months query  int    false "Symmetric window of N months each side of today (1-12)"
// @Success     200 {string} string "ICS document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/calendar/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ics, err := h.uc.ExportICS(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", ics)
}
