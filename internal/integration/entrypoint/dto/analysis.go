package dto

import (
	"time"

	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// AnalysisResponse represents the spending summary for the active account.
type AnalysisResponse struct {
	AnalysisID              string                `json:"analysis_id,omitempty"`
	AccountID               string                `json:"account_id"`
	Window                  string                `json:"window"`
	NeedsTotal              string                `json:"needs_total"`
	WantsTotal              string                `json:"wants_total"`
	TotalSpending           string                `json:"total_spending"`
	MonthlyBudget           string                `json:"monthly_budget"`
	SavingsGoal             string                `json:"savings_goal"`
	HasGoal                 bool                  `json:"has_goal"`
	Remaining               string                `json:"remaining"`
	SavingsAmount           string                `json:"savings_amount"`
	ProgressPercentage      string                `json:"progress_percentage"`
	Recommendation          string                `json:"recommendation"`
	CoachNote               string                `json:"coach_note,omitempty"`
	AICategorized           bool                  `json:"ai_categorized"`
	Rewards                 ProjectionResponse    `json:"rewards"`
	CategorizedTransactions []TransactionResponse `json:"categorized_transactions"`
}

// PeriodResponse represents one month or quarter of savings history.
type PeriodResponse struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Spent      string `json:"spent"`
	Budget     string `json:"budget"`
	Goal       string `json:"goal"`
	Savings    string `json:"savings"`
	PctToGoal  string `json:"pct_to_goal"`
	MeetsGoal  bool   `json:"meets_goal"`
	NoActivity bool   `json:"no_activity"`
}

// HistoryResponse represents the savings history view.
type HistoryResponse struct {
	View          string           `json:"view"`
	MonthlyBudget string           `json:"monthly_budget"`
	SavingsGoal   string           `json:"savings_goal"`
	HasGoal       bool             `json:"has_goal"`
	Periods       []PeriodResponse `json:"periods"`
}

// AnalysisRecordResponse represents a stored analysis.
type AnalysisRecordResponse struct {
	ID               string    `json:"id"`
	NeedsTotal       string    `json:"needs_total"`
	WantsTotal       string    `json:"wants_total"`
	TotalSpending    string    `json:"total_spending"`
	MonthlyBudget    string    `json:"monthly_budget"`
	SavingsGoal      string    `json:"savings_goal"`
	Recommendation   string    `json:"recommendation"`
	CoachNote        string    `json:"coach_note,omitempty"`
	WantDescriptions []string  `json:"want_descriptions"`
	AICategorized    bool      `json:"ai_categorized"`
	CreatedAt        time.Time `json:"created_at"`
}

// AnalysisListResponse represents the response for listing stored analyses.
type AnalysisListResponse struct {
	Analyses []AnalysisRecordResponse `json:"analyses"`
}

// ToAnalysisResponse converts the analysis output to a response DTO.
func ToAnalysisResponse(output *analysis.GetAnalysisOutput) AnalysisResponse {
	s := output.Snapshot
	return AnalysisResponse{
		AnalysisID:              output.RecordID,
		AccountID:               output.Account.ID.String(),
		Window:                  s.Window.String(),
		NeedsTotal:              Money(s.Needs),
		WantsTotal:              Money(s.Wants),
		TotalSpending:           Money(s.Total),
		MonthlyBudget:           Money(output.Goal.MonthlyBudget),
		SavingsGoal:             Money(output.Goal.SavingsGoal),
		HasGoal:                 output.HasGoal,
		Remaining:               Money(s.Remaining),
		SavingsAmount:           Money(s.SavingsAmount),
		ProgressPercentage:      Money(s.ProgressPercentage),
		Recommendation:          s.Recommendation,
		CoachNote:               output.CoachNote,
		AICategorized:           output.AICategorized,
		Rewards:                 ToProjectionResponse(s.Rewards),
		CategorizedTransactions: ToTransactionResponses(s.Transactions),
	}
}

// ToPeriodResponse converts a history period to a response DTO.
func ToPeriodResponse(p coach.Period) PeriodResponse {
	return PeriodResponse{
		Key:        p.Key,
		Label:      p.Label,
		Start:      isoDate(p.Start),
		End:        isoDate(p.End),
		Spent:      Money(p.Spent),
		Budget:     Money(p.Budget),
		Goal:       Money(p.Goal),
		Savings:    Money(p.Savings),
		PctToGoal:  Money(p.PctToGoal),
		MeetsGoal:  p.MeetsGoal,
		NoActivity: p.NoActivity,
	}
}

// ToHistoryResponse converts the history output to a response DTO.
func ToHistoryResponse(output *analysis.GetHistoryOutput) HistoryResponse {
	periods := make([]PeriodResponse, 0, len(output.Periods))
	for _, p := range output.Periods {
		periods = append(periods, ToPeriodResponse(p))
	}
	return HistoryResponse{
		View:          string(output.View),
		MonthlyBudget: Money(output.Goal.MonthlyBudget),
		SavingsGoal:   Money(output.Goal.SavingsGoal),
		HasGoal:       output.HasGoal,
		Periods:       periods,
	}
}

// ToAnalysisListResponse converts stored analyses to a response DTO.
func ToAnalysisListResponse(records []*entity.AnalysisRecord) AnalysisListResponse {
	analyses := make([]AnalysisRecordResponse, 0, len(records))
	for _, r := range records {
		wants := r.WantDescriptions
		if wants == nil {
			wants = []string{}
		}
		analyses = append(analyses, AnalysisRecordResponse{
			ID:               r.ID.String(),
			NeedsTotal:       Money(r.NeedsTotal),
			WantsTotal:       Money(r.WantsTotal),
			TotalSpending:    Money(r.TotalSpending),
			MonthlyBudget:    Money(r.MonthlyBudget),
			SavingsGoal:      Money(r.SavingsGoal),
			Recommendation:   r.Recommendation,
			CoachNote:        r.CoachNote,
			WantDescriptions: wants,
			AICategorized:    r.AICategorized,
			CreatedAt:        r.CreatedAt,
		})
	}
	return AnalysisListResponse{Analyses: analyses}
}
