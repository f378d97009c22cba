package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/office-scheduler/internal/logging"
)

type HTTPError struct {
	Code    string         `json:"error_code"`
	Kind    Kind           `json:"kind,omitempty"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, HTTPError{Code: code, Kind: KindValidation, Message: message})
}

func Forbidden(c *gin.Context, code, message string) {
	c.JSON(http.StatusForbidden, HTTPError{Code: code, Kind: KindAccessDenied, Message: message})
}

func NotFound(c *gin.Context, code, message string) {
	c.JSON(http.StatusNotFound, HTTPError{Code: code, Kind: KindNotFound, Message: message})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAccessDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindIntegration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err using the business error envelope. Errors that are not
// business errors are logged and reported as internal_error.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		message := be.Message
		if message == "" {
			message = be.Code
		}
		c.JSON(StatusFor(be.Kind), HTTPError{
			Code:    be.Code,
			Kind:    be.Kind,
			Message: message,
			Details: be.Details,
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "not_found", "Resource not found.")
		return
	}

	logging.FromContext(c.Request.Context()).Error("request failed", "error", err)
	Internal(c, "internal_error", "Unexpected error.")
}
