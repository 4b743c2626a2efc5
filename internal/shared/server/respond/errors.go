package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"string-analyzer/internal/shared/errors"
	"string-analyzer/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if status >= http.StatusInternalServerError {
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Warn("http.error", fields)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError maps err to a status by its kind and sends the error response.
// Hints attached to the error are returned as details.
func FromError(c *gin.Context, err error) {
	var details interface{}
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		details = hints
	}

	switch errors.KindOf(err) {
	case errors.KindInvalidArgument:
		respondKind(c, http.StatusBadRequest, "validation_error", err, details)
	case errors.KindNotFound:
		respondKind(c, http.StatusNotFound, "not_found", err, details)
	case errors.KindConflict:
		respondKind(c, http.StatusConflict, "conflict", err, details)
	default:
		telemetry.Error("internal.error", map[string]any{
			"request_id": c.GetString("requestId"),
			"error":      err.Error(),
		})
		Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
	}
}

// respondKind reports the root cause message without wrapping context such as
// ids, so clients get one stable message per error.
func respondKind(c *gin.Context, status int, code string, err error, details interface{}) {
	Error(c, status, code, errors.UnwrapAll(err).Error(), details)
}
