package http

import (
	"net/http"
	"strings"

	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/security"
	"github.com/gin-gonic/gin"
)

// Context keys set by AdminAuthMiddleware.
const (
	// ContextAdminIDKey holds the authenticated admin's id.
	ContextAdminIDKey = "adminID"
	// ContextAdminEmailKey holds the authenticated admin's email.
	ContextAdminEmailKey = "adminEmail"
)

// AdminAuthMiddleware validates bearer tokens on protected routes.
//
// CORS preflight requests pass through unconditionally. A rejected request
// never reaches a handler; the middleware writes the error response itself.
func AdminAuthMiddleware(jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		claims, errJWT := security.ParseAdminToken(jwtCfg.Secret, token)
		if errJWT != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ContextAdminIDKey, claims.AdminID)
		c.Set(ContextAdminEmailKey, claims.Email)
		c.Next()
	}
}
