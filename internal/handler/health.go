package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the liveness probe.
// GET /health
func (app *Application) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// OpenAIHealth checks connectivity to the classification service.
// GET /health/openai
func (app *Application) OpenAIHealth(c *gin.Context) {
	count, err := app.Classifier.Ping(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected", "models_available": count})
}
