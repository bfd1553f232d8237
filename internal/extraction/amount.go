package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountRule recognizes one textual convention for a monetary value. Rules are
// evaluated in order and the first match wins, so labeled and currency-marked
// patterns must stay ahead of the generic fallbacks.
type amountRule struct {
	name string
	re   *regexp.Regexp
}

var amountRules = []amountRule{
	{
		// ₹1,000.00  $-15.99  -₹1,000.00
		name: "symbol_prefixed",
		re:   regexp.MustCompile(`[+-]?\s*[₹$€£]\s*(\d[\d,]*\.\d{1,2})`),
	},
	{
		// Rs. 1,500.50  INR 420  USD 12.00
		name: "code_prefixed",
		re:   regexp.MustCompile(`(?i)\b(?:rs\.?|inr|usd|eur|gbp)\s*([\d,]+(?:\.\d+)?)`),
	},
	{
		// 420.00 INR  1,500 Rs
		name: "code_suffixed",
		re:   regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(?:rs\.?|inr|usd|eur|gbp)\b`),
	},
	{
		// Amount: 420.00  amount - ₹1,500
		name: "labeled",
		re:   regexp.MustCompile(`(?i)\bamount\b\s*[:\-]?\s*[₹$€£]?\s*[+-]?\s*([\d,]+(?:\.\d+)?)`),
	},
	{
		// Any currency symbol followed by digits, decimals optional.
		name: "symbol_generic",
		re:   regexp.MustCompile(`[₹$€£]\s*([\d,]+(?:\.\d+)?)`),
	},
	{
		// Bare signed decimal, e.g. "Debit: 420.00". Requires a decimal point so
		// date fragments like 15-12-2024 never qualify.
		name: "bare_decimal",
		re:   regexp.MustCompile(`[+-]?\b(\d[\d,]*\.\d{1,2})\b`),
	},
}

// extractAmount scans text with the ordered amount rules. The sign and any
// debit framing in the source never survive: the stored amount is absolute.
func extractAmount(text string) *float64 {
	for _, rule := range amountRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		value, err := decimal.NewFromString(raw)
		if err != nil {
			// A rule that matched but cannot parse must not abort the others.
			continue
		}
		amount := value.Abs().InexactFloat64()
		return &amount
	}
	return nil
}
