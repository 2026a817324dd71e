// Package investment contains the investment education use case.
package investment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

const (
	keepSavingTitle       = "Keep Saving!"
	keepSavingExplanation = "You're making progress toward your $%s goal. Keep up the good work!"

	congratulationsTitle       = "Congratulations on Reaching Your Goal! 🎉"
	congratulationsExplanation = "Congratulations on successfully reaching your $%s savings goal! " +
		"This is a fantastic achievement that shows great financial discipline. " +
		"As you continue building your savings, you might want to learn about index funds - " +
		"these are investment vehicles that hold many different stocks, providing diversification " +
		"and typically lower risk compared to individual stock picking. " +
		"This is general educational information, and you should always do your own research " +
		"or consult with a qualified financial advisor before making investment decisions. " +
		"Celebrate this milestone - you've earned it! 🎊"
)

// goalReachedRatio is the share of the savings goal wants may reach while the goal still counts as met.
var goalReachedRatio = decimal.NewFromFloat(0.5)

// GetInvestmentIdeaInput represents the input for the investment idea.
type GetInvestmentIdeaInput struct {
	Now time.Time
}

// GetInvestmentIdeaOutput represents the output of the investment idea.
type GetInvestmentIdeaOutput struct {
	Title       string
	Explanation string
	GoalReached bool
	FromAI      bool
}

// GetInvestmentIdeaUseCase suggests a beginner investing concept once spending is under control.
type GetInvestmentIdeaUseCase struct {
	evaluator *analysis.Evaluator
	aiService adapter.AICoachService
}

// NewGetInvestmentIdeaUseCase creates a new GetInvestmentIdeaUseCase instance. aiService may be nil.
func NewGetInvestmentIdeaUseCase(evaluator *analysis.Evaluator, aiService adapter.AICoachService) *GetInvestmentIdeaUseCase {
	return &GetInvestmentIdeaUseCase{
		evaluator: evaluator,
		aiService: aiService,
	}
}

// Execute returns the idea for the active account.
func (uc *GetInvestmentIdeaUseCase) Execute(ctx context.Context, input GetInvestmentIdeaInput) (*GetInvestmentIdeaOutput, error) {
	evaluation, err := uc.evaluator.Evaluate(ctx, valueobject.AllTime(), input.Now)
	if err != nil {
		return nil, err
	}

	goal := evaluation.Snapshot.Goal.SavingsGoal
	wants := evaluation.Snapshot.Wants

	if wants.GreaterThan(goal.Mul(goalReachedRatio)) {
		return &GetInvestmentIdeaOutput{
			Title:       keepSavingTitle,
			Explanation: fmt.Sprintf(keepSavingExplanation, goal.String()),
		}, nil
	}

	output := &GetInvestmentIdeaOutput{
		Title:       congratulationsTitle,
		Explanation: fmt.Sprintf(congratulationsExplanation, goal.String()),
		GoalReached: true,
	}

	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return output, nil
	}

	concept, err := uc.aiService.InvestmentConcept(ctx, goal)
	if err != nil {
		slog.Warn("AI investment concept failed, using fallback", "error", err)
		return output, nil
	}
	if strings.TrimSpace(concept.Title) == "" || strings.TrimSpace(concept.Explanation) == "" {
		return output, nil
	}

	output.Title = concept.Title
	output.Explanation = concept.Explanation
	output.FromAI = true
	return output, nil
}
