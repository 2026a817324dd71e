package analysis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// GetAnalysisInput represents the input for an analysis run.
type GetAnalysisInput struct {
	Window valueobject.SpendingWindow
	Now    time.Time
}

// GetAnalysisOutput represents the output of an analysis run.
type GetAnalysisOutput struct {
	Account       *entity.Account
	Goal          coach.Goal
	HasGoal       bool
	Snapshot      coach.Snapshot
	CoachNote     string
	AICategorized bool
	RecordID      string
}

// GetAnalysisUseCase runs the engine, asks the AI coach for a note and records the result.
type GetAnalysisUseCase struct {
	evaluator    *Evaluator
	aiService    adapter.AICoachService
	analysisRepo adapter.AnalysisRepository
}

// NewGetAnalysisUseCase creates a new GetAnalysisUseCase instance. aiService may be nil.
func NewGetAnalysisUseCase(
	evaluator *Evaluator,
	aiService adapter.AICoachService,
	analysisRepo adapter.AnalysisRepository,
) *GetAnalysisUseCase {
	return &GetAnalysisUseCase{
		evaluator:    evaluator,
		aiService:    aiService,
		analysisRepo: analysisRepo,
	}
}

// Execute performs the analysis.
func (uc *GetAnalysisUseCase) Execute(ctx context.Context, input GetAnalysisInput) (*GetAnalysisOutput, error) {
	evaluation, err := uc.evaluator.Evaluate(ctx, input.Window, input.Now)
	if err != nil {
		return nil, err
	}

	snapshot := evaluation.Snapshot
	wants := wantDescriptions(snapshot.Transactions)
	note := uc.coachNote(ctx, snapshot, wants)

	output := &GetAnalysisOutput{
		Account:       evaluation.Account,
		Goal:          evaluation.Goal,
		HasGoal:       evaluation.HasGoal,
		Snapshot:      snapshot,
		CoachNote:     note,
		AICategorized: evaluation.AICategorized,
	}

	record := entity.NewAnalysisRecord(evaluation.Account.ID)
	record.NeedsTotal = snapshot.Needs
	record.WantsTotal = snapshot.Wants
	record.TotalSpending = snapshot.Total
	record.MonthlyBudget = evaluation.Goal.MonthlyBudget
	record.SavingsGoal = evaluation.Goal.SavingsGoal
	record.Recommendation = snapshot.Recommendation
	record.CoachNote = note
	record.WantDescriptions = wants
	record.AICategorized = evaluation.AICategorized

	if err := uc.analysisRepo.Create(ctx, record); err != nil {
		slog.Warn("Failed to store analysis",
			"code", domainerror.ErrCodeAnalysisNotStored,
			"account_id", evaluation.Account.ID,
			"error", err,
		)
	} else {
		output.RecordID = record.ID.String()
	}

	slog.Info("Analysis complete",
		"account_id", evaluation.Account.ID,
		"window", snapshot.Window.String(),
		"needs", snapshot.Needs.StringFixed(2),
		"wants", snapshot.Wants.StringFixed(2),
		"ai_categorized", evaluation.AICategorized,
	)

	return output, nil
}

func (uc *GetAnalysisUseCase) coachNote(ctx context.Context, snapshot coach.Snapshot, wants []string) string {
	fallback := FallbackCoachNote(snapshot.Wants, snapshot.Goal.SavingsGoal)
	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return fallback
	}

	note, err := uc.aiService.CoachNote(ctx, adapter.CoachNoteRequest{
		NeedsTotal:       snapshot.Needs,
		WantsTotal:       snapshot.Wants,
		SavingsGoal:      snapshot.Goal.SavingsGoal,
		WantDescriptions: wants,
	})
	if err != nil {
		classified, retryable := classifyAIError(err)
		slog.Warn("AI coach note failed, using fallback",
			"code", classified.Code,
			"retryable", retryable,
			"error", err,
		)
		return fallback
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return fallback
	}
	return note
}

func wantDescriptions(txs []coach.Transaction) []string {
	out := []string{}
	for _, tx := range txs {
		if tx.Category == entity.CategoryWant {
			out = append(out, tx.Description)
		}
	}
	return out
}
