package extraction

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allenkiakshay/vessify/internal/models"
)

func TestDecodeModelJSON_Direct(t *testing.T) {
	payload, err := decodeModelJSON(`{"amount": 420.0, "category": "Food & Dining", "confidence": 0.9}`)
	require.NoError(t, err)
	assert.Equal(t, 420.0, payload.Amount)
	assert.Equal(t, "Food & Dining", payload.Category)
	assert.Equal(t, 0.9, payload.Confidence)
}

func TestDecodeModelJSON_FencedBlock(t *testing.T) {
	raw := "Here is the extracted transaction:\n```json\n{\"amount\": 99.5, \"confidence\": 0.8}\n```\nLet me know if you need anything else."
	payload, err := decodeModelJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, 99.5, payload.Amount)
}

func TestDecodeModelJSON_FencedWithoutLanguage(t *testing.T) {
	raw := "```\n{\"description\": \"Uber ride\"}\n```"
	payload, err := decodeModelJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, "Uber ride", payload.Description)
}

func TestDecodeModelJSON_EmbeddedObject(t *testing.T) {
	raw := `The result is {"amount": 12.5, "category": "Transportation"} as requested.`
	payload, err := decodeModelJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, 12.5, payload.Amount)
	assert.Equal(t, "Transportation", payload.Category)
}

func TestDecodeModelJSON_NoObject(t *testing.T) {
	_, err := decodeModelJSON("I could not parse that text, sorry.")
	assert.Error(t, err)
}

func TestSanitize_AmountAbsolute(t *testing.T) {
	result := sanitize(&modelPayload{Amount: -1500.5})
	require.NotNil(t, result.Amount)
	assert.Equal(t, 1500.5, *result.Amount)
}

func TestSanitize_NonNumericAmountDropped(t *testing.T) {
	result := sanitize(&modelPayload{Amount: "four hundred"})
	assert.Nil(t, result.Amount)
}

func TestSanitize_DescriptionTruncated(t *testing.T) {
	long := strings.Repeat("a", 300)
	result := sanitize(&modelPayload{Description: long})
	require.NotNil(t, result.Description)
	assert.Len(t, *result.Description, 255)
}

func TestSanitize_ConfidenceDefault(t *testing.T) {
	tests := []struct {
		name       string
		confidence any
		want       float64
	}{
		{"in_range", 0.85, 0.85},
		{"zero", 0.0, 0.0},
		{"one", 1.0, 1.0},
		{"above_range", 1.7, 0.5},
		{"negative", -0.2, 0.5},
		{"string", "high", 0.5},
		{"missing", nil, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitize(&modelPayload{Confidence: tt.confidence})
			assert.Equal(t, tt.want, result.Confidence)
		})
	}
}

func TestSanitize_Date(t *testing.T) {
	result := sanitize(&modelPayload{Date: "2024-12-15"})
	require.NotNil(t, result.Date)
	assert.Equal(t, time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC), *result.Date)

	result = sanitize(&modelPayload{Date: "not a date"})
	assert.Nil(t, result.Date)
}

func TestSanitize_CategoryPassedThrough(t *testing.T) {
	result := sanitize(&modelPayload{Category: "Healthcare"})
	require.NotNil(t, result.Category)
	assert.Equal(t, models.CategoryHealthcare, *result.Category)
}
