package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"staynest/constants"
	"staynest/response"
	"staynest/services"
)

// AuthMiddleware xác thực Bearer token và gắn userID, userRole vào context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, role, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// RequirePermission chặn request nếu role hiện tại không có quyền với action
func RequirePermission(action constants.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !constants.CanPerform(role.(string), action) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID lấy userID đã được AuthMiddleware gắn vào context
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
