package extraction

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/allenkiakshay/vessify/internal/models"
)

// modelPayload is the raw object decoded from the model response. Amount and
// confidence are decoded loosely so an out-of-contract value degrades a single
// field instead of failing the whole response.
type modelPayload struct {
	Amount      any    `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Confidence  any    `json:"confidence"`
	Reasoning   string `json:"reasoning"`
}

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// decodeModelJSON recovers a JSON object from a model response that may be
// wrapped in prose or a fenced code block. Order: whole response, fenced block,
// first brace-delimited object.
func decodeModelJSON(raw string) (*modelPayload, error) {
	raw = strings.TrimSpace(raw)

	var payload modelPayload
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		return &payload, nil
	}

	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &payload); err == nil {
			return &payload, nil
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err == nil {
			return &payload, nil
		}
	}

	return nil, fmt.Errorf("no JSON object found in model response")
}

// aiDateLayouts are tried in order when normalizing the model's date string.
var aiDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

// sanitize validates the decoded payload against the ParsedTransaction
// contract: absolute finite amount, 255-char description, in-range confidence
// (0.5 when the model returned something out of contract), lenient date.
// Category is passed through as-is; the prompt constrains it.
func sanitize(p *modelPayload) ParsedTransaction {
	var result ParsedTransaction

	if amount, ok := p.Amount.(float64); ok && !math.IsNaN(amount) && !math.IsInf(amount, 0) {
		abs := math.Abs(amount)
		result.Amount = &abs
	}

	if dateStr := strings.TrimSpace(p.Date); dateStr != "" {
		for _, layout := range aiDateLayouts {
			if d, err := time.Parse(layout, dateStr); err == nil {
				d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
				result.Date = &d
				break
			}
		}
	}

	if description := strings.TrimSpace(p.Description); description != "" {
		result.Description = strPtr(truncate(description, maxDescriptionLen))
	}

	if categoryStr := strings.TrimSpace(p.Category); categoryStr != "" {
		category := models.TransactionCategory(categoryStr)
		result.Category = &category
	}

	result.Confidence = 0.5
	if confidence, ok := p.Confidence.(float64); ok && confidence >= 0 && confidence <= 1 {
		result.Confidence = confidence
	}

	if reasoning := strings.TrimSpace(p.Reasoning); reasoning != "" {
		result.Reasoning = strPtr(reasoning)
	}

	return result
}
