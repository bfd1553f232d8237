// Package extraction turns free-text bank statement fragments into structured
// transaction fields. Two independent strategies produce the same result shape:
// a Gemini-backed extractor and an ordered-rule heuristic parser. Exactly one
// strategy produces any given result.
package extraction

import (
	"time"

	"github.com/allenkiakshay/vessify/internal/models"
)

// Maximum stored description length.
const maxDescriptionLen = 255

// ParsedTransaction is the output of either extraction strategy. Confidence is
// always set and always within [0, 1]; every other field may be absent.
type ParsedTransaction struct {
	Amount      *float64
	Date        *time.Time
	Description *string
	Category    *models.TransactionCategory
	Confidence  float64
	Reasoning   *string
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func strPtr(s string) *string {
	return &s
}
