package notion

import "github.com/hader239/voice-assistant/pkg/model"

// BuildProperties maps a classification onto the fixed per-user database
// schema. Every category shares one schema; the Type select disambiguates.
// Date and Amount are appended only when present AND owned by the category:
// a date on a non-appointment (or an amount on a non-spending entry) is model
// noise and gets dropped rather than persisted.
func BuildProperties(res model.ClassificationResult) map[string]any {
	props := map[string]any{
		"Name": map[string]any{
			"title": []any{
				map[string]any{"text": map[string]any{"content": res.Title}},
			},
		},
		"Type": map[string]any{
			"select": map[string]any{"name": res.Category.Label()},
		},
		"Description": map[string]any{
			"rich_text": []any{
				map[string]any{"text": map[string]any{"content": res.Description}},
			},
		},
		// Reserved for a future "done" flag; never computed from input.
		"Checkbox": map[string]any{
			"checkbox": false,
		},
	}

	if res.Date != nil && res.Category == model.CategoryAppointment {
		props["Date"] = map[string]any{
			"date": map[string]any{"start": *res.Date},
		}
	}
	if res.Amount != nil && res.Category == model.CategorySpending {
		props["Amount"] = map[string]any{
			"number": *res.Amount,
		}
	}

	return props
}
