package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// APIError pairs an HTTP status code with the user-facing message for a
// failed request. Internal error detail is logged server-side only and
// never placed here.
type APIError struct {
	StatusCode int
	Message    string
}

// NewAPIError creates a new APIError instance.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// RespondWithError sends the standardized JSON error response
// {"error": <message>} and aborts further handler processing.
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err.Message})
	c.Abort()
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
