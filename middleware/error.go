package middleware

import (
	apperrors "github.com/leenx3/Stayease-hotel/errors"
	"github.com/leenx3/Stayease-hotel/response"
	"github.com/leenx3/Stayease-hotel/services/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler log lỗi mà handler gắn vào context và trả response nếu handler chưa trả
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			if apperrors.IsAppError(e.Err) {
				log.Warn("%s %s: %v", c.Request.Method, c.FullPath(), e.Err)
				continue
			}
			log.Error("%s %s: %v", c.Request.Method, c.FullPath(), e.Err)
		}
		if !c.Writer.Written() {
			response.AppError(c, c.Errors.Last().Err, nil)
		}
	}
}
