package dto

import "github.com/financial-coach/backend/internal/application/usecase/creditcard"

// CardResponse represents a recommended credit card.
type CardResponse struct {
	Name              string   `json:"name"`
	Issuer            string   `json:"issuer"`
	Rewards           []string `json:"rewards"`
	Why               string   `json:"why"`
	Suitability       int      `json:"suitability"`
	CategoriesMatched []string `json:"categories_matched"`
}

// CreditCardsResponse represents the ranked card list.
type CreditCardsResponse struct {
	Cards              []CardResponse `json:"cards"`
	DetectedCategories []string       `json:"detected_categories"`
	Disclaimer         string         `json:"disclaimer"`
}

func categoryNames(categories []creditcard.SpendCategory) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	return names
}

// ToCreditCardsResponse converts the recommendation output to a response DTO.
func ToCreditCardsResponse(output *creditcard.RecommendCardsOutput) CreditCardsResponse {
	cards := make([]CardResponse, 0, len(output.Cards))
	for _, r := range output.Cards {
		cards = append(cards, CardResponse{
			Name:              r.Name,
			Issuer:            r.Issuer,
			Rewards:           r.Rewards,
			Why:               r.Why,
			Suitability:       r.Suitability,
			CategoriesMatched: categoryNames(r.CategoriesMatched),
		})
	}
	return CreditCardsResponse{
		Cards:              cards,
		DetectedCategories: categoryNames(output.Detected),
		Disclaimer:         output.Disclaimer,
	}
}
