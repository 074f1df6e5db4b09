package middleware

import (
	"net/http"
	"strings"

	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserID is the gin context key carrying the authenticated user id.
const ContextUserID = "userID"

// Authorize extracts and verifies the bearer token. All verification failures
// map to a uniform 401 so callers learn nothing about why a token was bad.
func Authorize(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid authorization header",
			})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := jwtManager.VerifyToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// RequestID tags every request for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Set("requestID", id)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id set by Authorize.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
