package extraction

import "fmt"

// buildExtractionPrompt produces the fixed-schema instruction sent to the
// model. The schema mirrors ParsedTransaction; the closed category list and
// the positive-amount rule are restated so the model output needs minimal
// post-correction.
func buildExtractionPrompt(text string) string {
	return fmt.Sprintf(`You are a transaction extraction engine for free-text bank statement fragments.

Extract the transaction details from the text below and return a SINGLE JSON object, nothing else.

Text:
%s

Return exactly this shape:
{
  "amount": number or null,
  "date": "YYYY-MM-DD" or null,
  "description": string or null,
  "category": string or null,
  "confidence": number,
  "reasoning": string
}

Rules:
- "amount" is always positive, even when the text marks a debit or uses a minus sign.
- Recognize multiple currency notations (symbol-prefixed, Rs./INR/USD/EUR codes) and grouped digits like 1,500.50 or 1,00,000.
- "date" must be normalized to YYYY-MM-DD; accept day-first, month-first and ISO input conventions. Use null if no date is present.
- "description" is the merchant or transaction label, at most 255 characters.
- "category" must be one of: Food & Dining, Shopping, Transportation, Entertainment, Utilities, Healthcare, Transfer, Income, Other.
- "confidence" is your own reliability estimate between 0 and 1.
- "reasoning" is a one-sentence explanation of what you extracted and why.
- Return ONLY valid raw JSON. Do NOT wrap the response in code fences or Markdown.`, text)
}
