package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the wire shape for every failed request: a success flag, a
// stable code, a human message and optional structured detail.
type HTTPError struct {
	Success bool           `json:"success"`
	Code    string         `json:"error_code"`
	Message string         `json:"message"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func Write(c *gin.Context, status int, code, message string, detail map[string]any) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
		Detail:  detail,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message, nil)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message, nil)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message, nil)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message, nil)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message, nil)
}

// FromBusiness translates a core BusinessError into the right HTTP status.
// Validation and conflicts are both 400; callers tell them apart by code.
func FromBusiness(c *gin.Context, err error) bool {
	be, ok := AsBusiness(err)
	if !ok {
		return false
	}

	status := http.StatusBadRequest
	if be.Code == CodeNotFound {
		status = http.StatusNotFound
	}

	Write(c, status, be.Code, be.Message, be.Meta)
	return true
}
