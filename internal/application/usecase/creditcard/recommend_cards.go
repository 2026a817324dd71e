package creditcard

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

// RecommendCardsInput represents the input for card recommendations.
type RecommendCardsInput struct {
	Now time.Time
}

// Recommendation is a catalog card with the detected categories it rewards.
type Recommendation struct {
	Card
	CategoriesMatched []SpendCategory
}

// RecommendCardsOutput represents the ranked cards.
type RecommendCardsOutput struct {
	Cards      []Recommendation
	Detected   []SpendCategory // ordered by spend, largest first
	Disclaimer string
}

// RecommendCardsUseCase ranks the card catalog against the active account's spending.
type RecommendCardsUseCase struct {
	evaluator *analysis.Evaluator
}

// NewRecommendCardsUseCase creates a new RecommendCardsUseCase instance.
func NewRecommendCardsUseCase(evaluator *analysis.Evaluator) *RecommendCardsUseCase {
	return &RecommendCardsUseCase{evaluator: evaluator}
}

// Execute ranks cards by the number of detected categories they reward, then by base suitability.
func (uc *RecommendCardsUseCase) Execute(ctx context.Context, input RecommendCardsInput) (*RecommendCardsOutput, error) {
	evaluation, err := uc.evaluator.Evaluate(ctx, valueobject.AllTime(), input.Now)
	if err != nil {
		return nil, err
	}

	detected := detectSpending(evaluation.Snapshot.Transactions)
	return &RecommendCardsOutput{
		Cards:      rank(detected),
		Detected:   detected,
		Disclaimer: Disclaimer,
	}, nil
}

func detectSpending(txs []coach.Transaction) []SpendCategory {
	spend := make(map[SpendCategory]decimal.Decimal)
	for _, tx := range txs {
		for _, c := range DetectCategories(tx.Description) {
			spend[c] = spend[c].Add(tx.Amount)
		}
	}

	detected := make([]SpendCategory, 0, len(spend))
	for c := range spend {
		detected = append(detected, c)
	}
	sort.Slice(detected, func(i, j int) bool {
		if cmp := spend[detected[i]].Cmp(spend[detected[j]]); cmp != 0 {
			return cmp > 0
		}
		return detected[i] < detected[j]
	})
	return detected
}

func rank(detected []SpendCategory) []Recommendation {
	found := make(map[SpendCategory]bool, len(detected))
	for _, c := range detected {
		found[c] = true
	}

	out := make([]Recommendation, 0, len(catalog))
	for _, card := range catalog {
		matched := []SpendCategory{}
		for _, c := range card.Categories {
			if found[c] {
				matched = append(matched, c)
			}
		}
		out = append(out, Recommendation{Card: card, CategoriesMatched: matched})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].CategoriesMatched) != len(out[j].CategoriesMatched) {
			return len(out[i].CategoriesMatched) > len(out[j].CategoriesMatched)
		}
		return out[i].Suitability > out[j].Suitability
	})
	return out
}
