package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

// InternalTokenAuth protects collaborator endpoints (payment gateway
// callbacks) with a static bearer token shared out of band.
func InternalTokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		expected := os.Getenv("INTERNAL_API_TOKEN")
		if expected == "" {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal token is not configured")
			c.Abort()
			return
		}

		if parts[1] != expected {
			response.Error(c, http.StatusForbidden, "AUTH_INVALID", "Invalid internal token")
			c.Abort()
			return
		}

		c.Next()
	}
}
