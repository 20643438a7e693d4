package http

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// needs a validated Google access token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.Auth(), mw.RateLimit(), h.List)
		events.POST("", mw.Auth(), mw.RateLimit(), h.Create)
		events.PUT("/:id", mw.Auth(), mw.RateLimit(), h.Update)
		events.DELETE("/:id", mw.Auth(), mw.RateLimit(), h.Delete)
		events.POST("/batch-delete", mw.Auth(), mw.RateLimit(), h.BatchDelete)
	}
	rg.GET("/export", mw.Auth(), mw.RateLimit(), h.Export)
}
