package middleware

import (
	"errors"
	"net/http"

	"go-veloce-backend/internal/delivery/http/response"
	"go-veloce-backend/pkg/apperror"
	"go-veloce-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// SECURITY: the wrapped cause (SMTP/auth details) is logged
			// server-side only and never reaches the response body.
			if appErr.Err != nil && logger.Log != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.Request.URL.Path,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		if logger.Log != nil {
			logger.Log.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
