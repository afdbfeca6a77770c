package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
	"github.com/ssms/scholarship/internal/pkg/logger"
)

// StatusFor maps an application error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrMalformedRequest,
		apperrors.ErrInvalidQueryParam,
		apperrors.ErrPersistence):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes err as {"error": message} with the mapped status.
// Storage errors carry the driver message as-is.
func HandleAPIError(c *gin.Context, err error) {
	status := StatusFor(err)

	event := logger.Ctx(c.Request.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Ctx(c.Request.Context()).Error()
	}
	event.Err(err).Int("status", status).Str("path", c.FullPath()).Msg("Request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(err.Error()))
}

// MethodNotAllowed answers a known route called with the wrong verb. gin
// fills the Allow header with the registered methods before calling it.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := strings.Split(c.Writer.Header().Get("Allow"), ", ")
		msg := "Only " + strings.Join(allowed, " or ") + " method allowed."
		HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrMethodNotAllowed, msg))
	}
}
