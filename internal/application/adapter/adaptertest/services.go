package adaptertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// AIService is a scripted adapter.AICoachService.
type AIService struct {
	Available   bool
	Categories  map[string]entity.Category // by description; missing entries fall back to keywords
	Note        string
	Concept     *adapter.InvestmentConcept
	Err         error
	Categorized int
}

func (s *AIService) Categorize(_ context.Context, transactions []adapter.TransactionForAI) ([]entity.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]entity.Category, 0, len(transactions))
	for _, t := range transactions {
		if c, ok := s.Categories[t.Description]; ok {
			out = append(out, c)
			continue
		}
		out = append(out, entity.FallbackCategory(t.Description))
	}
	s.Categorized += len(transactions)
	return out, nil
}

func (s *AIService) CoachNote(_ context.Context, _ adapter.CoachNoteRequest) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Note, nil
}

func (s *AIService) InvestmentConcept(_ context.Context, _ decimal.Decimal) (*adapter.InvestmentConcept, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Concept == nil {
		return nil, domainerror.ErrAIUnavailable
	}
	return s.Concept, nil
}

func (s *AIService) IsAvailable() bool {
	return s.Available
}

// NewsService returns canned headlines by symbol.
type NewsService struct {
	Available bool
	Headlines map[string]string
	Errs      map[string]error
}

func (s *NewsService) LatestHeadline(_ context.Context, symbol, _ string) (string, error) {
	if err := s.Errs[symbol]; err != nil {
		return "", err
	}
	return s.Headlines[symbol], nil
}

func (s *NewsService) IsAvailable() bool {
	return s.Available
}

// BankingClient records calls and hands out sequential ids.
type BankingClient struct {
	mu          sync.Mutex
	Err         error
	PurchaseErr error
	Merchants   []string
	Customers   []adapter.BankCustomer
	Accounts    []adapter.BankAccount
	Purchases   []adapter.BankPurchase
}

func (c *BankingClient) CreateCustomer(_ context.Context, customer adapter.BankCustomer) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return "", c.Err
	}
	c.Customers = append(c.Customers, customer)
	return fmt.Sprintf("cust_%d", len(c.Customers)), nil
}

func (c *BankingClient) CreateAccount(_ context.Context, _ string, account adapter.BankAccount) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return "", c.Err
	}
	c.Accounts = append(c.Accounts, account)
	return fmt.Sprintf("acct_%d", len(c.Accounts)), nil
}

func (c *BankingClient) ListMerchantIDs(_ context.Context) ([]string, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Merchants, nil
}

func (c *BankingClient) CreatePurchase(_ context.Context, _ string, purchase adapter.BankPurchase) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.PurchaseErr != nil {
		return c.PurchaseErr
	}
	c.Purchases = append(c.Purchases, purchase)
	return nil
}

// EmailService captures queued digests.
type EmailService struct {
	mu      sync.Mutex
	Digests []adapter.QueueWeeklyDigestInput
	Err     error
}

func (s *EmailService) QueueWeeklyDigest(_ context.Context, input adapter.QueueWeeklyDigestInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Digests = append(s.Digests, input)
	return nil
}
