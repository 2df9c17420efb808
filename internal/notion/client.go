package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hader239/voice-assistant/pkg/model"
)

const (
	apiBase    = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"
)

// Client creates pages in users' Notion databases. Credentials are per user
// and passed per call; the client itself only holds the connection pool.
type Client struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		base:   apiBase,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// SaveEntry creates one page in the user's database. All failures are logged
// and collapsed into a false return; the create is a single atomic call so
// there is nothing to roll back.
func (c *Client) SaveEntry(ctx context.Context, apiKey, databaseID string, res model.ClassificationResult) bool {
	body := map[string]any{
		"parent":     map[string]any{"database_id": databaseID},
		"properties": BuildProperties(res),
		"children": []any{
			map[string]any{
				"object": "block",
				"type":   "paragraph",
				"paragraph": map[string]any{
					"rich_text": []any{
						map[string]any{
							"type": "text",
							"text": map[string]any{"content": res.Description},
						},
					},
				},
			},
		},
	}

	if err := c.createPage(ctx, apiKey, body); err != nil {
		c.logger.Sugar().Errorw("failed to save to notion", "category", res.Category, "err", err)
		return false
	}

	c.logger.Sugar().Infow("saved to notion", "category", res.Category, "title", res.Title)
	return true
}

func (c *Client) createPage(ctx context.Context, apiKey string, body map[string]any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal page: %w", err)
	}

	r, err := http.NewRequestWithContext(ctx, "POST", c.base+"/pages", bytes.NewReader(b))
	if err != nil {
		return err
	}
	r.Header.Set("Authorization", "Bearer "+apiKey)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Notion-Version", apiVersion)

	resp, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notion api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}
