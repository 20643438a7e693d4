package http

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// Range godoc
// @Summary     Infer calendar date ranges for a query
// @Description Decides the minimal date window(s) needed to answer the query. Falls back to a deterministic heuristic when the model path is unusable.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       token header string   true "Google OAuth access token"
// @Param       body  body   rangeReq true "Query and optional conversation tail"
// @Success     200 {object} assistant.RangeResult
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/range [POST]
func (h *handler) Range(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := middleware.GetScope(c)
	if req.Timezone != "" {
		sc.Timezone = req.Timezone
	}

	result, err := h.uc.InferRange(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.InferRange: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, result)
}

// Stream godoc
// @Summary     Stream one chat turn
// @Description Emits server-sent events: prose delta frames, then at most one actions frame, then a terminal [DONE] marker. The stream always terminates cleanly.
// @Tags        Assistant
// @Accept      json
// @Produce     text/event-stream
// @Param       token header string    true "Google OAuth access token"
// @Param       body  body   streamReq true "Query, event snapshot, and conversation history"
// @Success     200 {string} string "SSE stream"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/stream [POST]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStreamReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	// The terminal marker goes out no matter how the turn ended, so the
	// client's reader loop never hangs.
	defer func() {
		fmt.Fprint(c.Writer, "data: [DONE]\n\n")
		c.Writer.Flush()
	}()

	err = h.uc.StreamChat(ctx, middleware.GetScope(c), req.toInput(), func(frame assistant.StreamFrame) error {
		return writeSSE(c.Writer, frame)
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.StreamChat: %v", err)
		_ = writeSSE(c.Writer, assistant.StreamFrame{Error: err.Error()})
	}
}

// Execute godoc
// @Summary     Execute an extracted action list
// @Description Resolves and dispatches calendar actions with best-effort, per-action isolation. Batches multi-create and multi-delete turns.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       token header string     true "Google OAuth access token"
// @Param       body  body   executeReq true "Actions and the event snapshot they were generated against"
// @Success     200 {object} assistant.ExecutionLog
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/actions [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	log, err := h.uc.ExecuteActions(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteActions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, log)
}

// writeSSE frames one JSON payload as a server-sent event and flushes it.
func writeSSE(w gin.ResponseWriter, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", raw); err != nil {
		return err
	}
	w.Flush()
	return nil
}
