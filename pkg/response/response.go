package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hader239/voice-assistant/pkg/model"
)

// The Shortcut client only reads the response body, never the status code,
// so every outcome except authentication is a 200 with a success flag.

// OK sends a successful response with a confirmation message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, model.APIResponse{
		Success: true,
		Message: message,
	})
}

// Failed sends a soft failure: 200 status, success=false.
func Failed(c *gin.Context, message string) {
	c.JSON(http.StatusOK, model.APIResponse{
		Success: false,
		Message: message,
	})
}

// Unauthorized sends a 401 response. The only failure callers can
// distinguish by status.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.APIResponse{
		Success: false,
		Message: message,
	})
}

// BadRequest sends a 400 response for malformed request bodies.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.APIResponse{
		Success: false,
		Message: message,
	})
}
