package extraction

import "strings"

// Per-field confidence weights. Their sum is clamped to 1.0; when zero fields
// match the confidence is exactly 0, which callers treat as "nothing could be
// extracted" rather than merely "low confidence".
const (
	amountWeight              = 0.3
	dateWeight                = 0.3
	descriptionWeight         = 0.2
	descriptionFallbackWeight = 0.1
	categoryWeight            = 0.2
)

// FallbackParser is the rule-based extraction strategy. It is stateless and
// pure: the same text always yields the same ParsedTransaction.
type FallbackParser struct{}

func NewFallbackParser() *FallbackParser {
	return &FallbackParser{}
}

// Parse runs the four field extractors over the text and accumulates the
// confidence from whichever fields matched. Each extractor is independent;
// one field failing to match never affects the others.
func (p *FallbackParser) Parse(text string) ParsedTransaction {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	var result ParsedTransaction
	var confidence float64

	if amount := extractAmount(text); amount != nil {
		result.Amount = amount
		confidence += amountWeight
	}

	if date := extractDate(text); date != nil {
		result.Date = date
		confidence += dateWeight
	}

	if description, weight := extractDescription(text); description != nil {
		result.Description = description
		confidence += weight
	}

	if category := extractCategory(text); category != nil {
		result.Category = category
		confidence += categoryWeight
	}

	// A description with no corroborating field is just the input echoed
	// back. Drop it so "nothing extracted" reads as exactly zero confidence.
	if result.Amount == nil && result.Date == nil && result.Category == nil {
		result.Description = nil
		confidence = 0
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	result.Confidence = confidence

	return result
}
