package extraction

import (
	"strings"

	"github.com/allenkiakshay/vessify/internal/models"
)

// categoryRule maps one category to the lowercase keywords that imply it.
// Rules are tested in the order listed and the first category with any keyword
// substring match wins; there is no scoring across categories.
type categoryRule struct {
	category models.TransactionCategory
	keywords []string
}

var categoryRules = []categoryRule{
	{models.CategoryFoodDining, []string{
		"swiggy", "zomato", "starbucks", "mcdonald", "dominos", "kfc", "subway",
		"restaurant", "cafe", "coffee", "pizza", "burger", "dining", "food", "bakery",
	}},
	{models.CategoryShopping, []string{
		"amazon", "flipkart", "myntra", "ajio", "nykaa", "walmart", "ikea",
		"shopping", "mall", "store", "purchase", "order",
	}},
	{models.CategoryTransportation, []string{
		"uber", "ola", "rapido", "irctc", "petrol", "diesel", "fuel",
		"metro", "taxi", "cab", "bus", "train", "flight", "airline", "parking", "toll",
	}},
	{models.CategoryEntertainment, []string{
		"netflix", "spotify", "hotstar", "prime video", "bookmyshow",
		"movie", "cinema", "theatre", "concert", "game", "steam",
	}},
	{models.CategoryUtilities, []string{
		"electricity", "water bill", "gas bill", "broadband", "internet", "wifi",
		"recharge", "postpaid", "prepaid", "dth", "utility", "bescom", "tneb",
	}},
	{models.CategoryHealthcare, []string{
		"hospital", "pharmacy", "apollo", "medplus", "practo", "clinic",
		"doctor", "medical", "medicine", "diagnostic", "health",
	}},
	{models.CategoryTransfer, []string{
		"transfer", "upi", "neft", "imps", "rtgs", "sent to", "paid to",
	}},
	{models.CategoryIncome, []string{
		"salary", "credited", "refund", "cashback", "dividend", "interest earned", "income",
	}},
}

// extractCategory lowercases the input once and returns the first category with
// a keyword hit, or nil when nothing classifies confidently.
func extractCategory(text string) *models.TransactionCategory {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				category := rule.category
				return &category
			}
		}
	}
	return nil
}
