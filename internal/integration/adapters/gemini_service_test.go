package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

func newScriptedGemini(reply string, err error) (*GeminiService, *[]string) {
	prompts := &[]string{}
	s := NewGeminiService("test-key", "")
	s.generate = func(_ context.Context, prompt string, _ bool) (string, error) {
		*prompts = append(*prompts, prompt)
		return reply, err
	}
	return s, prompts
}

func TestGeminiService_IsAvailable(t *testing.T) {
	if NewGeminiService("", "").IsAvailable() {
		t.Error("expected service without key to be unavailable")
	}
	if !NewGeminiService("key", "").IsAvailable() {
		t.Error("expected service with key to be available")
	}

	_, err := NewGeminiService("", "").Categorize(context.Background(), []adapter.TransactionForAI{{Description: "HEB"}})
	if !errors.Is(err, domainerror.ErrAIUnavailable) {
		t.Errorf("expected ErrAIUnavailable, got %v", err)
	}
}

func TestGeminiService_Categorize(t *testing.T) {
	txs := []adapter.TransactionForAI{
		{Description: "HEB Grocery Store", Amount: "52.10"},
		{Description: "Starbucks Coffee", Amount: "6.45"},
		{Description: "Mystery", Amount: "1.00"},
	}

	tests := []struct {
		name      string
		reply     string
		expected  []entity.Category
		expectErr bool
	}{
		{
			name:     "plain json",
			reply:    `{"transactions": ["Need", "Want", "Want"]}`,
			expected: []entity.Category{entity.CategoryNeed, entity.CategoryWant, entity.CategoryWant},
		},
		{
			name:     "fenced json with odd labels",
			reply:    "```json\n{\"transactions\": [\"need\", \"Want\", \"Luxury\"]}\n```",
			expected: []entity.Category{entity.CategoryNeed, entity.CategoryWant, entity.CategoryWant},
		},
		{
			name:      "wrong length",
			reply:     `{"transactions": ["Need"]}`,
			expectErr: true,
		},
		{
			name:      "not json",
			reply:     "Sure! Here are your categories.",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, prompts := newScriptedGemini(tt.reply, nil)

			categories, err := s.Categorize(context.Background(), txs)
			if tt.expectErr {
				if err == nil || !strings.Contains(err.Error(), "parse") {
					t.Fatalf("expected parse error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := range tt.expected {
				if categories[i] != tt.expected[i] {
					t.Errorf("expected %s at %d, got %s", tt.expected[i], i, categories[i])
				}
			}
			if !strings.Contains((*prompts)[0], `"Starbucks Coffee"`) {
				t.Errorf("expected descriptions in prompt, got %s", (*prompts)[0])
			}
		})
	}
}

func TestGeminiService_CoachNote(t *testing.T) {
	request := adapter.CoachNoteRequest{
		NeedsTotal:       decimal.NewFromInt(120),
		WantsTotal:       decimal.NewFromInt(30),
		SavingsGoal:      decimal.NewFromInt(500),
		WantDescriptions: []string{"Starbucks Coffee"},
	}

	tests := []struct {
		name     string
		reply    string
		expected string
	}{
		{
			name:     "structured reply",
			reply:    `{"top_want_transactions":[{"description":"Starbucks Coffee","amount":6.5}],"top_categories":["coffee"],"suggestion":"Brew at home twice this week.","reason":"Small swaps add up."}`,
			expected: "Brew at home twice this week. Small swaps add up. Top wants: Starbucks Coffee ($6.50). Major categories: coffee.",
		},
		{
			name:     "plain text reply",
			reply:    "Skip one takeout order.\nMore text.",
			expected: "Skip one takeout order.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, prompts := newScriptedGemini(tt.reply, nil)

			note, err := s.CoachNote(context.Background(), request)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if note != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, note)
			}
			if !strings.Contains((*prompts)[0], "monthly_savings_goal: $500.00") {
				t.Errorf("expected goal in prompt, got %s", (*prompts)[0])
			}
		})
	}
}

func TestGeminiService_InvestmentConcept(t *testing.T) {
	s, _ := newScriptedGemini(`{"title":"Index Funds 101","explanation":"A bundle of many stocks."}`, nil)
	concept, err := s.InvestmentConcept(context.Background(), decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if concept.Title != "Index Funds 101" || concept.Explanation != "A bundle of many stocks." {
		t.Errorf("unexpected concept %+v", concept)
	}

	s, _ = newScriptedGemini("Index funds hold many stocks.", nil)
	concept, err = s.InvestmentConcept(context.Background(), decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if concept.Explanation != "Index funds hold many stocks." || concept.Title == "" {
		t.Errorf("expected raw reply as explanation, got %+v", concept)
	}

	providerErr := errors.New("googleapi: Error 429: quota exceeded")
	s, _ = newScriptedGemini("", providerErr)
	if _, err = s.InvestmentConcept(context.Background(), decimal.NewFromInt(500)); !errors.Is(err, providerErr) {
		t.Errorf("expected provider error, got %v", err)
	}
}
