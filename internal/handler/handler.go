package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hader239/voice-assistant/pkg/model"
)

// Classifier turns a transcript into a typed classification.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.ClassificationResult, error)
	Ping(ctx context.Context) (int, error)
}

// Persister writes one classified entry to the user's database. Failures are
// collapsed into a false return at the persistence layer.
type Persister interface {
	SaveEntry(ctx context.Context, apiKey, databaseID string, res model.ClassificationResult) bool
}

// UserStore resolves API keys to user configuration.
type UserStore interface {
	Lookup(apiKey string) (*model.UserConfig, bool)
}

type Application struct {
	Logger     *zap.Logger
	Users      UserStore
	Classifier Classifier
	Persister  Persister
}

// UserFromContext retrieves the user resolved by the auth middleware.
func (app *Application) UserFromContext(c *gin.Context) *model.UserConfig {
	contextUser, exists := c.Get("user")
	if !exists {
		return nil
	}

	user, ok := contextUser.(*model.UserConfig)
	if !ok {
		return nil
	}
	return user
}
