package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/apierr"
)

type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type ErrorEnvelope struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	if status >= http.StatusInternalServerError && code == "internal" {
		// internal details stay in the logs
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Message: msg,
		Code:    code,
	})
}

// RespondFromError maps service errors onto the error envelope. Unrecognized errors are internal.
func RespondFromError(c *gin.Context, err error) {
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		RespondError(c, status, ae.Code, ae.Err)
		return
	}
	switch {
	case errors.Is(err, filtering.ErrInvalidIdentifier):
		RespondError(c, http.StatusBadRequest, "invalid_filter", err)
	case errors.Is(err, filtering.ErrUnknownKind):
		RespondError(c, http.StatusNotFound, "unknown_kind", err)
	case errors.Is(err, filtering.ErrLookupFailed):
		RespondError(c, http.StatusServiceUnavailable, "lookup_failed", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}

func RespondOK(c *gin.Context, message string, payload any) {
	if message == "" {
		message = "ok"
	}
	c.JSON(http.StatusOK, Envelope{Message: message, Data: payload})
}

func RespondCreated(c *gin.Context, message string, payload any) {
	c.JSON(http.StatusCreated, Envelope{Message: message, Data: payload})
}
