// Package response writes the wire shapes consumed by the enrollment UI.
// Success bodies vary per endpoint; error bodies are always
// {"error": "<message>"} with an optional per-field "details" object.
package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/elsur/driving-school-api/pkg/errors"
)

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Error sends an error response. The internal cause, if any, never
// reaches the client; handlers log it instead.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := gin.H{"error": appErr.Message}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, body)
}
