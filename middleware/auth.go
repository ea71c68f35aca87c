package middleware

import (
	"net/http"
	"strings"

	"broheal/services/auth"
	"broheal/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// RequireRole gates a route group to principals holding a live session under
// one of the given roles. The bearer token must be an access token, and its
// hash must match the one stored in the role-scoped session, so logout and
// re-login elsewhere invalidate it immediately.
func RequireRole(sessions auth.SessionStore, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, tokenType, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if tokenType != utils.TokenTypeAccess {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}

		session, err := sessions.Get(c.Request.Context(), role, subject)
		if err != nil || session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, log in again"})
			return
		}
		if utils.HashToken(tokenString) != utils.HashToken(session.Tokens.Access) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token superseded, log in again"})
			return
		}

		c.Set(CtxUserID, subject)
		c.Set(CtxRole, role)
		c.Next()
	}
}
