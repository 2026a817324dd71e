package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// SetGoalRequest represents the request body for setting the savings goal.
type SetGoalRequest struct {
	Goal   *decimal.Decimal `json:"goal" binding:"required"`
	Budget *decimal.Decimal `json:"budget" binding:"required"`
}

// GoalResponse represents the budget goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	MonthlyBudget string    `json:"monthly_budget"`
	SavingsGoal   string    `json:"savings_goal"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SetGoalResponse represents the response after the goal is stored.
type SetGoalResponse struct {
	Status    string       `json:"status"`
	GoalSet   string       `json:"goal_set"`
	BudgetSet string       `json:"budget_set"`
	Goal      GoalResponse `json:"goal"`
}

// ToGoalResponse converts a domain BudgetGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.BudgetGoal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		AccountID:     g.AccountID.String(),
		MonthlyBudget: Money(g.MonthlyBudget),
		SavingsGoal:   Money(g.SavingsGoal),
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToSetGoalResponse wraps the stored goal in the set-goal envelope.
func ToSetGoalResponse(g *entity.BudgetGoal) SetGoalResponse {
	return SetGoalResponse{
		Status:    "success",
		GoalSet:   Money(g.SavingsGoal),
		BudgetSet: Money(g.MonthlyBudget),
		Goal:      ToGoalResponse(g),
	}
}
