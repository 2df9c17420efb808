package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hader239/voice-assistant/pkg/model"
	"github.com/hader239/voice-assistant/pkg/response"
)

// ProcessTranscript classifies a voice transcript and saves it to the
// caller's Notion database.
// POST /process
func (app *Application) ProcessTranscript(c *gin.Context) {
	user := app.UserFromContext(c)
	if user == nil {
		response.Unauthorized(c, "Invalid API key")
		return
	}

	var req model.TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("process bad request", "user", user.Name, "err", err)
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Expected input, not an error: short-circuit before any external call.
	if strings.TrimSpace(req.Text) == "" {
		response.Failed(c, "Empty transcript")
		return
	}

	app.Logger.Sugar().Infow("processing transcript", "user", user.Name)

	ctx := c.Request.Context()
	classification, err := app.Classifier.Classify(ctx, req.Text)
	if err != nil {
		app.Logger.Sugar().Errorw("classification failed", "user", user.Name, "err", err)
		response.Failed(c, "Failed to classify transcript")
		return
	}

	app.Logger.Sugar().Infow("classified transcript",
		"user", user.Name, "category", classification.Category, "title", classification.Title)

	if ok := app.Persister.SaveEntry(ctx, user.NotionAPIKey, user.NotionDatabaseID, classification); !ok {
		response.Failed(c, "Failed to save to Notion")
		return
	}

	response.OK(c, fmt.Sprintf("Saved %s: %s", classification.Category, classification.Title))
}
