package middleware

import (
	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/model"
)

const scopeKey = "request_scope"

// SetScope attaches the request scope to the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope attached by the Auth middleware. A zero scope
// means the route was registered without Auth.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
