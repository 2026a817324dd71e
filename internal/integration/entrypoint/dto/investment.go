package dto

import "github.com/financial-coach/backend/internal/application/usecase/investment"

// InvestmentIdeaResponse represents the educational investment note.
type InvestmentIdeaResponse struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	GoalReached bool   `json:"goal_reached"`
	FromAI      bool   `json:"from_ai"`
}

// ToInvestmentIdeaResponse converts the investment idea output to a response DTO.
func ToInvestmentIdeaResponse(output *investment.GetInvestmentIdeaOutput) InvestmentIdeaResponse {
	return InvestmentIdeaResponse{
		Title:       output.Title,
		Explanation: output.Explanation,
		GoalReached: output.GoalReached,
		FromAI:      output.FromAI,
	}
}
