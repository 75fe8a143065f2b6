package middleware

import (
	"errors"
	"net/http"

	"candidate-registry-backend/internal/delivery/http/response"
	"candidate-registry-backend/pkg/apperror"
	"candidate-registry-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors appended to the gin context. AppErrors carry
// their own status and a user-safe message; anything else is logged and
// collapsed into a generic 500 so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.L().Error("unhandled request error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "Une erreur inattendue s'est produite.", nil)
			}
		}
	}
}
