package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allenkiakshay/vessify/internal/models"
)

func TestFallbackParser_EndToEnd(t *testing.T) {
	parser := NewFallbackParser()

	result := parser.Parse("Starbucks Coffee 12/15/2024 ₹420.00")

	require.NotNil(t, result.Amount)
	assert.Equal(t, 420.00, *result.Amount)

	require.NotNil(t, result.Date)
	assert.Equal(t, 2024, result.Date.Year())
	assert.Equal(t, time.December, result.Date.Month())
	assert.Equal(t, 15, result.Date.Day())

	require.NotNil(t, result.Description)
	assert.Contains(t, *result.Description, "Starbucks Coffee")

	require.NotNil(t, result.Category)
	assert.Equal(t, models.CategoryFoodDining, *result.Category)

	assert.Greater(t, result.Confidence, 0.8)
}

func TestFallbackParser_GroupedAmount(t *testing.T) {
	parser := NewFallbackParser()

	result := parser.Parse("Amazon Purchase Rs. 1,500.50 dated 15-12-2024")

	require.NotNil(t, result.Amount)
	assert.Equal(t, 1500.50, *result.Amount)

	require.NotNil(t, result.Date)
	assert.Equal(t, 2024, result.Date.Year())
	assert.Equal(t, time.December, result.Date.Month())
	assert.Equal(t, 15, result.Date.Day())

	require.NotNil(t, result.Category)
	assert.Equal(t, models.CategoryShopping, *result.Category)
}

func TestFallbackParser_AmountNeverNegative(t *testing.T) {
	parser := NewFallbackParser()

	inputs := []string{
		"-₹1,000.00",
		"Debit: 420.00",
		"$-15.99 refund reversal",
		"Amount: -250.75",
	}
	for _, input := range inputs {
		result := parser.Parse(input)
		require.NotNil(t, result.Amount, "input %q", input)
		assert.GreaterOrEqual(t, *result.Amount, 0.0, "input %q", input)
	}
}

func TestFallbackParser_AmountValues(t *testing.T) {
	parser := NewFallbackParser()

	tests := []struct {
		input string
		want  float64
	}{
		{"-₹1,000.00", 1000.00},
		{"Debit: 420.00", 420.00},
		{"INR 99", 99},
		{"12.50 USD for lunch", 12.50},
		{"Amount: ₹1,500", 1500},
	}
	for _, tt := range tests {
		result := parser.Parse(tt.input)
		require.NotNil(t, result.Amount, "input %q", tt.input)
		assert.Equal(t, tt.want, *result.Amount, "input %q", tt.input)
	}
}

func TestFallbackParser_ConfidenceBounds(t *testing.T) {
	parser := NewFallbackParser()

	inputs := []string{
		"Starbucks Coffee 12/15/2024 ₹420.00",
		"zzz qqq",
		"Uber ride",
		"₹420.00",
		"",
	}
	for _, input := range inputs {
		result := parser.Parse(input)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "input %q", input)
		assert.LessOrEqual(t, result.Confidence, 1.0, "input %q", input)
	}
}

func TestFallbackParser_NothingRecognized(t *testing.T) {
	parser := NewFallbackParser()

	result := parser.Parse("zzz qqq")

	assert.Nil(t, result.Amount)
	assert.Nil(t, result.Date)
	assert.Nil(t, result.Description)
	assert.Nil(t, result.Category)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestFallbackParser_CategoryClosure(t *testing.T) {
	parser := NewFallbackParser()

	inputs := []string{
		"Swiggy order ₹350.00",
		"Uber trip to airport",
		"Netflix subscription renewal",
		"Apollo pharmacy bill",
		"UPI sent to landlord",
		"Salary credited for August",
		"Electricity recharge done",
		"Flipkart order delivered",
	}
	for _, input := range inputs {
		result := parser.Parse(input)
		if result.Category == nil {
			continue
		}
		assert.True(t, result.Category.IsValid(), "input %q produced %q", input, *result.Category)
	}
}

func TestFallbackParser_Idempotent(t *testing.T) {
	parser := NewFallbackParser()

	text := "Zomato dinner ₹642.50 on 3rd March 2024"
	first := parser.Parse(text)
	second := parser.Parse(text)

	assert.Equal(t, first, second)
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"day_month_name_year", "paid on 11 Dec 2025", "2025-12-11"},
		{"ordinal_day", "3rd March 2024 at the cafe", "2024-03-03"},
		{"month_name_day_year", "Dec 11, 2025 statement", "2025-12-11"},
		{"numeric_day_first", "15/12/2024", "2024-12-15"},
		{"numeric_month_first_swapped", "12/15/2024", "2024-12-15"},
		{"two_digit_year", "15-12-24", "2024-12-15"},
		{"iso", "2024-12-15 18:00", "2024-12-15"},
		{"labeled", "Date: 15/12/2024", "2024-12-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDate(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestDateRules_LabeledReusesBasicRules(t *testing.T) {
	require.Len(t, dateRules, len(basicDateRules)+1)

	labeled := dateRules[len(dateRules)-1]
	assert.Equal(t, "labeled", labeled.name)

	m := labeled.re.FindStringSubmatch("Date: 11 Dec 2025")
	require.NotNil(t, m)
	d := labeled.parse(m)
	require.NotNil(t, d)
	assert.Equal(t, "2025-12-11", d.Format("2006-01-02"))
}

func TestExtractDate_InvalidDatesSkipped(t *testing.T) {
	assert.Nil(t, extractDate("meeting on 32/01/2024"))
	assert.Nil(t, extractDate("32 Dec 2024"))
	assert.Nil(t, extractDate("2024-02-30"))
	assert.Nil(t, extractDate("no date here"))
}

func TestExtractDescription_SkipsNumericLines(t *testing.T) {
	text := "₹420.00\n12/15/2024\nStarbucks Coffee"
	desc, weight := extractDescription(text)
	require.NotNil(t, desc)
	assert.Equal(t, "Starbucks Coffee", *desc)
	assert.Equal(t, descriptionWeight, weight)
}

func TestExtractDescription_NumericFallback(t *testing.T) {
	desc, weight := extractDescription("₹420.00\n12/15/2024")
	require.NotNil(t, desc)
	assert.Equal(t, "₹420.00", *desc)
	assert.Equal(t, descriptionFallbackWeight, weight)
}
