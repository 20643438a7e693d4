package http

import (
	"github.com/gin-gonic/gin"
)

// processRangeReq binds the range inference request body.
func (h *handler) processRangeReq(c *gin.Context) (rangeReq, error) {
	var req rangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processStreamReq binds the chat stream request body.
func (h *handler) processStreamReq(c *gin.Context) (streamReq, error) {
	var req streamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExecuteReq binds the action execution request body.
func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
