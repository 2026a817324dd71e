// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// generateFunc sends a prompt and returns the text of the first candidate.
type generateFunc func(ctx context.Context, prompt string, jsonOutput bool) (string, error)

// GeminiService implements the AICoachService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
	generate  generateFunc
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	s := &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
	s.generate = s.generateContent
	return s
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Categorize labels each transaction Need or Want, in input order.
func (s *GeminiService) Categorize(ctx context.Context, transactions []adapter.TransactionForAI) ([]entity.Category, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrAIUnavailable
	}
	if len(transactions) == 0 {
		return []entity.Category{}, nil
	}

	descriptions := make([]string, len(transactions))
	for i, tx := range transactions {
		descriptions[i] = tx.Description
	}

	text, err := s.generate(ctx, buildCategorizePrompt(descriptions), true)
	if err != nil {
		return nil, err
	}

	categories, err := parseCategories(text)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(transactions) {
		return nil, fmt.Errorf("failed to parse categories: expected %d labels, got %d", len(transactions), len(categories))
	}
	return categories, nil
}

// CoachNote writes a short encouraging note about the spending split.
func (s *GeminiService) CoachNote(ctx context.Context, request adapter.CoachNoteRequest) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrAIUnavailable
	}

	text, err := s.generate(ctx, buildCoachNotePrompt(request), true)
	if err != nil {
		return "", err
	}
	return parseCoachNote(text), nil
}

// InvestmentConcept explains index-fund investing to someone who reached their goal.
func (s *GeminiService) InvestmentConcept(ctx context.Context, savingsGoal decimal.Decimal) (*adapter.InvestmentConcept, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrAIUnavailable
	}

	text, err := s.generate(ctx, buildInvestmentPrompt(savingsGoal), true)
	if err != nil {
		return nil, err
	}
	return parseInvestmentConcept(text), nil
}

// generateContent calls Gemini with a fresh client.
func (s *GeminiService) generateContent(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	if jsonOutput {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

func buildCategorizePrompt(descriptions []string) string {
	list, _ := json.Marshal(descriptions)

	var sb strings.Builder
	sb.WriteString(`You are a meticulous financial analyst AI. Your sole task is to categorize a list of bank transaction descriptions as either 'Need' or 'Want'.

Definitions:
- 'Needs' are essential for living and working: rent, utilities, essential groceries, transportation to work, insurance, and bill payments.
- 'Wants' are non-essential items that improve quality of life: restaurants, coffee shops, shopping for non-essential clothing, entertainment, subscriptions for entertainment, and impulse buys.

Examples:
- "AUSTIN ENERGY BILL" -> "Need"
- "HEB" -> "Need" (Groceries)
- "Chevron Gas" -> "Need" (Transportation)
- "Starbucks" -> "Want"
- "Zara" -> "Want"
- "Netflix Subscription" -> "Want"
- "AMC Theaters" -> "Want"

Return a single JSON object and nothing else, with one label per transaction in the same order:
{"transactions": ["Need", "Want", ...]}

Transactions to categorize:
`)
	sb.Write(list)
	return sb.String()
}

func buildCoachNotePrompt(request adapter.CoachNoteRequest) string {
	wants, _ := json.Marshal(request.WantDescriptions)

	return fmt.Sprintf(`You are an expert, friendly financial coach. Given the user's spending context, return a single JSON object (and nothing else) with these fields:

{
  "top_want_transactions": [{"description": "<text>", "amount": <number>}],
  "top_categories": ["coffee", "dining", "shopping"],
  "suggestion": "A short (1-2 sentence) actionable suggestion for the user",
  "reason": "One short sentence explaining why this will help"
}

User context:
- monthly_savings_goal: $%s
- needs_total: $%s
- wants_total: $%s
- want_transactions: %s

Constraints:
- List at most 3 top want transactions.
- Keep the suggestion to 1-2 sentences. Focus on small, actionable changes (e.g., "make coffee at home 3 days this week").`,
		request.SavingsGoal.StringFixed(2),
		request.NeedsTotal.StringFixed(2),
		request.WantsTotal.StringFixed(2),
		wants,
	)
}

func buildInvestmentPrompt(savingsGoal decimal.Decimal) string {
	return fmt.Sprintf(`You are a financial educator AI. Your role is to explain complex financial concepts in a simple, easy-to-understand way. You are NOT a financial advisor and must not give financial advice.

User context:
The user has successfully reached their savings goal of $%s and is curious about what to do with their savings.

Task:
Explain the concept of "investing a percentage of savings into a low-cost index fund that tracks a broad market like the S&P 500."

Constraints:
- DO NOT recommend any specific stock, ETF, or mutual fund ticker.
- DO NOT use language that could be read as advice to buy, sell, or hold any security.
- DO explain that an index fund is a bundle of many stocks, which helps with diversification.
- DO frame the explanation as general educational information.
- DO conclude by congratulating them on hitting their goal and suggesting a small, well-deserved treat.

Return a JSON object with "title" and "explanation" fields.`, savingsGoal.String())
}

// cleanJSON strips markdown code fences around a JSON payload.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

type geminiCategories struct {
	Transactions []string `json:"transactions"`
}

func parseCategories(text string) ([]entity.Category, error) {
	var parsed geminiCategories
	if err := json.Unmarshal([]byte(cleanJSON(text)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	categories := make([]entity.Category, len(parsed.Transactions))
	for i, label := range parsed.Transactions {
		category := entity.Category(strings.TrimSpace(label))
		if strings.EqualFold(string(category), string(entity.CategoryNeed)) {
			category = entity.CategoryNeed
		}
		if !category.IsValid() {
			category = entity.CategoryWant
		}
		categories[i] = category
	}
	return categories, nil
}

type geminiCoachNote struct {
	TopWantTransactions []struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	} `json:"top_want_transactions"`
	TopCategories []string `json:"top_categories"`
	Suggestion    string   `json:"suggestion"`
	Reason        string   `json:"reason"`
}

// parseCoachNote flattens the structured note into one paragraph. Non-JSON
// replies contribute their first line.
func parseCoachNote(text string) string {
	cleaned := cleanJSON(text)

	var note geminiCoachNote
	if err := json.Unmarshal([]byte(cleaned), &note); err != nil {
		first, _, _ := strings.Cut(cleaned, "\n")
		if len(first) > 500 {
			first = first[:500]
		}
		return strings.TrimSpace(first)
	}

	parts := make([]string, 0, 4)
	if s := strings.TrimSpace(note.Suggestion); s != "" {
		parts = append(parts, s)
	}
	if r := strings.TrimSpace(note.Reason); r != "" {
		parts = append(parts, r)
	}
	if len(note.TopWantTransactions) > 0 {
		items := make([]string, 0, len(note.TopWantTransactions))
		for _, t := range note.TopWantTransactions {
			amount := decimal.NewFromFloat(t.Amount).StringFixed(2)
			items = append(items, fmt.Sprintf("%s ($%s)", strings.TrimSpace(t.Description), amount))
		}
		parts = append(parts, "Top wants: "+strings.Join(items, ", ")+".")
	}
	if len(note.TopCategories) > 0 {
		parts = append(parts, "Major categories: "+strings.Join(note.TopCategories, ", ")+".")
	}
	return strings.Join(parts, " ")
}

// parseInvestmentConcept accepts the JSON shape, or uses the raw reply as the explanation.
func parseInvestmentConcept(text string) *adapter.InvestmentConcept {
	var concept adapter.InvestmentConcept
	var raw struct {
		Title       string `json:"title"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(text)), &raw); err == nil && raw.Explanation != "" {
		concept.Title = raw.Title
		concept.Explanation = raw.Explanation
		return &concept
	}

	concept.Title = "Congratulations on Reaching Your Goal! 🎉"
	concept.Explanation = strings.TrimSpace(text)
	return &concept
}

var _ adapter.AICoachService = (*GeminiService)(nil)
