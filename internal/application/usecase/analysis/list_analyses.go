package analysis

import (
	"context"
	"fmt"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// DefaultAnalysesLimit is used when no limit is requested.
const DefaultAnalysesLimit = 10

// ListAnalysesInput represents the input for listing past analyses.
type ListAnalysesInput struct {
	Limit int
}

// ListAnalysesOutput represents the stored analyses, newest first.
type ListAnalysesOutput struct {
	Analyses []*entity.AnalysisRecord
}

// ListAnalysesUseCase returns the analyses previously handed out to the active account.
type ListAnalysesUseCase struct {
	accountRepo  adapter.AccountRepository
	analysisRepo adapter.AnalysisRepository
}

// NewListAnalysesUseCase creates a new ListAnalysesUseCase instance.
func NewListAnalysesUseCase(accountRepo adapter.AccountRepository, analysisRepo adapter.AnalysisRepository) *ListAnalysesUseCase {
	return &ListAnalysesUseCase{
		accountRepo:  accountRepo,
		analysisRepo: analysisRepo,
	}
}

// Execute lists the analyses.
func (uc *ListAnalysesUseCase) Execute(ctx context.Context, input ListAnalysesInput) (*ListAnalysesOutput, error) {
	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultAnalysesLimit
	}

	records, err := uc.analysisRepo.ListByAccount(ctx, acct.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	if records == nil {
		records = []*entity.AnalysisRecord{}
	}

	return &ListAnalysesOutput{Analyses: records}, nil
}
