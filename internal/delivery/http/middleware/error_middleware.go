package middleware

import (
	"errors"
	"net/http"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				// Never expose internal error details to clients. Log
				// server-side and send a generic message.
				logger.Log.Error("internal server error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
