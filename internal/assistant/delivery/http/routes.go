package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/range", mw.Auth(), mw.RateLimit(), h.Range)
	rg.POST("/stream", mw.Auth(), mw.RateLimit(), h.Stream)
	rg.POST("/actions", mw.Auth(), mw.RateLimit(), h.Execute)
}
