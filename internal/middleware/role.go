package middleware

import (
	"net/http"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireManager ensures the authenticated user carries the manager flag.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		isManager, exists := c.Get("is_manager")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if v, ok := isManager.(bool); !ok || !v {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: manager role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
