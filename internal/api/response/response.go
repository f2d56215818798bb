package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the error envelope.
const (
	ErrInvalidRequest     = "INVALID_REQUEST"
	ErrValidationFailed   = "VALIDATION_FAILED"
	ErrNotFound           = "NOT_FOUND"
	ErrGetFailed          = "GET_FAILED"
	ErrBackendUnavailable = "BACKEND_UNAVAILABLE"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func BadRequest(c *gin.Context, code, message, details string) {
	respondError(c, http.StatusBadRequest, code, message, details)
}

func NotFound(c *gin.Context, code, message, details string) {
	respondError(c, http.StatusNotFound, code, message, details)
}

func ServiceUnavailable(c *gin.Context, code, message, details string) {
	respondError(c, http.StatusServiceUnavailable, code, message, details)
}

func InternalError(c *gin.Context, code, message, details string) {
	respondError(c, http.StatusInternalServerError, code, message, details)
}

func respondError(c *gin.Context, status int, code, message, details string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": errorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
