package main

import (
	"github.com/gin-gonic/gin"

	"github.com/hader239/voice-assistant/pkg/response"
)

// APIKeyMiddleware resolves the X-API-Key header against the users source
// and stores the user config on the context. The lookup hits the source
// fresh on every request, so key changes need no restart.
func (app *application) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			response.Unauthorized(c, "Missing API key")
			return
		}

		user, ok := app.Users.Lookup(apiKey)
		if !ok {
			app.Logger.Sugar().Warnw("unknown api key", "path", c.Request.URL.Path)
			response.Unauthorized(c, "Invalid API key")
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
