package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap, one request id per call
	r.Use(func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Next()
		app.Logger.Sugar().Infow("http",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	})

	r.GET("/health", app.Handler.Health)
	r.GET("/health/openai", app.Handler.OpenAIHealth)
	r.GET("/debug/network", app.Handler.NetworkDebug)

	protected := r.Group("/")
	protected.Use(app.APIKeyMiddleware())
	{
		protected.POST("/process", app.Handler.ProcessTranscript)
	}

	return r
}
