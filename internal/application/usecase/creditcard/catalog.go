// Package creditcard contains the credit card recommendation use case.
package creditcard

import "strings"

// SpendCategory is a reward category a card can pay extra on.
type SpendCategory string

const (
	SpendGrocery       SpendCategory = "grocery"
	SpendGas           SpendCategory = "gas"
	SpendDining        SpendCategory = "dining"
	SpendEntertainment SpendCategory = "entertainment"
	SpendStreaming     SpendCategory = "streaming"
	SpendTravel        SpendCategory = "travel"
	SpendOnline        SpendCategory = "online"
)

// Disclaimer is returned with every recommendation.
const Disclaimer = "General information only. Offers and terms vary; verify current details. Not financial advice."

// Card is one entry of the card catalog.
type Card struct {
	Name        string
	Issuer      string
	Rewards     []string
	Why         string
	Suitability int
	Categories  []SpendCategory
}

var catalog = []Card{
	{
		Name:        "Blue Cash Everyday",
		Issuer:      "American Express",
		Rewards:     []string{"3% back at U.S. supermarkets", "3% back on U.S. gas", "1% back other"},
		Why:         "Strong everyday categories for groceries and gas.",
		Suitability: 82,
		Categories:  []SpendCategory{SpendGrocery, SpendGas},
	},
	{
		Name:        "SavorOne",
		Issuer:      "Capital One",
		Rewards:     []string{"3% back dining", "3% back entertainment", "3% back popular streaming", "3% at grocery stores"},
		Why:         "Well-rounded dining, entertainment, streaming, and grocery rewards.",
		Suitability: 80,
		Categories:  []SpendCategory{SpendDining, SpendEntertainment, SpendStreaming, SpendGrocery},
	},
	{
		Name:        "Citi Custom Cash",
		Issuer:      "Citi",
		Rewards:     []string{"5% back top category (up to cap)", "1% back other"},
		Why:         "Automatically adapts to your highest monthly category.",
		Suitability: 79,
		Categories:  []SpendCategory{SpendDining, SpendGas, SpendGrocery, SpendTravel, SpendStreaming},
	},
	{
		Name:        "Discover it Cash Back",
		Issuer:      "Discover",
		Rewards:     []string{"5% rotating categories (activation)", "1% back other"},
		Why:         "Quarterly rotating 5% categories can align with your spend.",
		Suitability: 75,
		Categories:  []SpendCategory{SpendGrocery, SpendGas, SpendOnline},
	},
}

// categoryKeywords is checked in order; a description can match several categories.
var categoryKeywords = []struct {
	category SpendCategory
	keywords []string
}{
	{SpendGrocery, []string{"grocery", "grocer", "supermarket", "heb", "whole foods", "trader joe", "kroger", "aldi", "costco", "market"}},
	{SpendGas, []string{"gas", "fuel", "shell", "exxon", "chevron", "valero", "bp "}},
	{SpendDining, []string{"restaurant", "coffee", "starbucks", "cafe", "pizza", "burger", "chipotle", "taco", "grill", "diner", "doordash", "uber eats", "bakery"}},
	{SpendEntertainment, []string{"movie", "theater", "theatre", "cinema", "concert", "ticket", "bowling", "arcade", "museum"}},
	{SpendStreaming, []string{"netflix", "spotify", "hulu", "disney+", "streaming", "youtube", "hbo"}},
	{SpendTravel, []string{"airline", "hotel", "airbnb", "flight", "travel", "lyft", "uber trip"}},
	{SpendOnline, []string{"amazon", "online", "ebay", "etsy"}},
}

// DetectCategories returns the spend categories mentioned in a description.
func DetectCategories(description string) []SpendCategory {
	lower := strings.ToLower(description)
	var out []SpendCategory
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				out = append(out, entry.category)
				break
			}
		}
	}
	return out
}
