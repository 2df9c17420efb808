package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hader239/voice-assistant/pkg/model"
)

// Failure subtypes. Callers check these with errors.Is; both are terminal,
// nothing in this pipeline is retried.
var (
	// ErrUpstream means the chat-completions call itself failed.
	ErrUpstream = errors.New("classification upstream failure")
	// ErrParse means the model replied but not with valid JSON.
	ErrParse = errors.New("classification parse failure")
)

const systemPrompt = `You are a helpful assistant that classifies voice transcripts into categories and extracts structured information.

Analyze the transcript and determine which category it belongs to:
- "idea": Creative ideas, concepts, thoughts, brainstorming, suggestions
- "task": Things to do, reminders, action items, errands
- "appointment": Meetings, scheduled events, calls with specific times/dates
- "spending": Financial entries, purchases, expenses, money spent
- "unsorted": Anything that fits none of the above

Extract a clear, concise title and a description from the transcript.

You MUST respond with ONLY a valid JSON object (no markdown, no explanation) containing:
- category: one of "idea", "task", "appointment", "spending", "unsorted"
- title: a short, clear title (max 50 characters)
- description: the main content/details from the transcript
- date: ONLY for "appointment": the absolute event datetime in ISO-8601 format. Resolve relative expressions like "tomorrow at 3pm" against today's date given below. If no time is stated, use 09:00:00.
- amount: ONLY for "spending": the amount as a plain number. Resolve verbal amounts ("twenty dollars" -> 20). Drop the currency.

Omit date and amount entirely for every other category.

Example responses:
{"category": "task", "title": "Call mom", "description": "Need to call mom tomorrow"}
{"category": "appointment", "title": "Dentist appointment", "description": "Dentist appointment tomorrow at 3pm", "date": "2025-06-12T15:00:00"}
{"category": "spending", "title": "Groceries", "description": "Spent twenty dollars on groceries", "amount": 20}`

// rawResult is the loose shape we accept from the model before defaulting.
type rawResult struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        *string  `json:"date"`
	Amount      *float64 `json:"amount"`
}

// Classify sends the transcript to OpenAI and extracts a typed result.
// Field defaulting is independent per field: a missing category falls back
// to unsorted, a missing title becomes "Untitled", a missing description is
// replaced by the transcript itself so it is never empty. Date and amount
// stay nil when absent; category/field correlation is enforced later by the
// Notion property builder, not here.
func (c *Client) Classify(ctx context.Context, text string) (model.ClassificationResult, error) {
	userPrompt := fmt.Sprintf("Today is %s. Classify this transcript and respond with JSON: %s",
		time.Now().Format("Monday, January 2, 2006"), text)

	chatReq := ChatRequest{
		Messages: []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	respStr, err := c.Chat(ctx, chatReq)
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(respStr), &raw); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("%w: %v (body: %s)", ErrParse, err, respStr)
	}

	result := model.ClassificationResult{
		Category:    model.ParseCategory(raw.Category),
		Title:       raw.Title,
		Description: raw.Description,
		Date:        raw.Date,
		Amount:      raw.Amount,
	}
	if strings.TrimSpace(result.Title) == "" {
		result.Title = "Untitled"
	}
	if strings.TrimSpace(result.Description) == "" {
		result.Description = text
	}

	return result, nil
}
