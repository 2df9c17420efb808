package model

import "strings"

type Category string

const (
	CategoryIdea        Category = "idea"
	CategoryTask        Category = "task"
	CategoryAppointment Category = "appointment"
	CategorySpending    Category = "spending"
	CategoryUnsorted    Category = "unsorted"
)

// ParseCategory maps raw model output onto the fixed category set.
// Anything unrecognized falls back to CategoryUnsorted.
func ParseCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryIdea:
		return CategoryIdea
	case CategoryTask:
		return CategoryTask
	case CategoryAppointment:
		return CategoryAppointment
	case CategorySpending:
		return CategorySpending
	case CategoryUnsorted:
		return CategoryUnsorted
	default:
		return CategoryUnsorted
	}
}

// Label returns the category with the first letter capitalized, as shown in
// the Notion Type select ("idea" -> "Idea").
func (c Category) Label() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ClassificationResult is the structured output extracted from a transcript.
// Date is an absolute ISO-8601 datetime and only set for appointments;
// Amount is a plain number and only set for spending entries.
type ClassificationResult struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        *string  `json:"date,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}
