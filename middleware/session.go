package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionKey    = "sessionId"
)

// SessionMiddleware tạo sessionId nếu chưa có và gán vào context
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(SessionHeader)
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		c.Set(SessionKey, sessionId)
		c.Writer.Header().Set(SessionHeader, sessionId)

		c.Next()
	}
}

// SessionID lấy sessionId đã được middleware gán
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
