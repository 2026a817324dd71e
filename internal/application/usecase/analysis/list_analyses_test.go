package analysis

import (
	"context"
	"testing"

	"github.com/financial-coach/backend/internal/domain/entity"
)

func TestListAnalysesUseCase_Execute(t *testing.T) {
	f := newFixture(purchase("Movie night", 20, entity.CategoryWant))
	f.setGoal(500, 100)
	ctx := context.Background()

	getAnalysis := NewGetAnalysisUseCase(f.evaluator, nil, f.analyses)
	for i := 0; i < 12; i++ {
		if _, err := getAnalysis.Execute(ctx, GetAnalysisInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tests := []struct {
		name          string
		limit         int
		expectedCount int
	}{
		{name: "default limit", limit: 0, expectedCount: DefaultAnalysesLimit},
		{name: "explicit limit", limit: 3, expectedCount: 3},
		{name: "limit above stored", limit: 50, expectedCount: 12},
	}

	uc := NewListAnalysesUseCase(f.accounts, f.analyses)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(ctx, ListAnalysesInput{Limit: tt.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Analyses) != tt.expectedCount {
				t.Errorf("expected %d analyses, got %d", tt.expectedCount, len(out.Analyses))
			}
			if out.Analyses[0] != f.analyses.Records[len(f.analyses.Records)-1] {
				t.Error("expected newest analysis first")
			}
		})
	}
}

func TestListAnalysesUseCase_Empty(t *testing.T) {
	f := newFixture()
	out, err := NewListAnalysesUseCase(f.accounts, f.analyses).Execute(context.Background(), ListAnalysesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Analyses == nil || len(out.Analyses) != 0 {
		t.Errorf("expected empty non-nil list, got %v", out.Analyses)
	}
}
