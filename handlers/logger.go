package handlers

import (
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// principal returns the authenticated user ID set by the auth middleware.
func principal(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

// principalRole returns the authenticated role set by the auth middleware.
func principalRole(c *gin.Context) string {
	r, _ := c.Get("role")
	s, _ := r.(string)
	return s
}
