// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// TransactionForAI represents transaction data for AI processing.
type TransactionForAI struct {
	Description string
	Amount      string
}

// CoachNoteRequest carries the figures the AI comments on.
type CoachNoteRequest struct {
	NeedsTotal       decimal.Decimal
	WantsTotal       decimal.Decimal
	SavingsGoal      decimal.Decimal
	WantDescriptions []string
}

// InvestmentConcept is a short beginner-level explanation of an investing idea.
type InvestmentConcept struct {
	Title       string
	Explanation string
}

// AICoachService defines the interface for the generative AI coach.
type AICoachService interface {
	// Categorize labels each transaction Need or Want, in input order.
	Categorize(ctx context.Context, transactions []TransactionForAI) ([]entity.Category, error)

	// CoachNote writes a short encouraging note about the spending split.
	CoachNote(ctx context.Context, request CoachNoteRequest) (string, error)

	// InvestmentConcept explains one beginner investing concept to someone who reached savingsGoal.
	InvestmentConcept(ctx context.Context, savingsGoal decimal.Decimal) (*InvestmentConcept, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
