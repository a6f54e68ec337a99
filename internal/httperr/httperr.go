package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Status maps a domain error kind to its HTTP status.
func Status(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBusiness:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error. Errors that are not domain errors are
// logged and reported as internal.
func Respond(c *gin.Context, err error) {
	de, ok := As(err)
	if !ok {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		Internal(c, "internal_error", "internal server error")
		return
	}

	resp := HTTPError{Code: de.Code, Message: de.Error(), Field: de.Field}
	if de.Kind == KindNotFound {
		resp.Code = de.Entity + "_not_found"
	}
	c.JSON(Status(de.Kind), resp)
}
