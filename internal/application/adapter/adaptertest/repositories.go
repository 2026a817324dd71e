// Package adaptertest provides in-memory implementations of the adapter ports for use-case tests.
package adaptertest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// AccountRepository is an in-memory adapter.AccountRepository.
type AccountRepository struct {
	mu       sync.Mutex
	accounts []*entity.Account
	Err      error
}

// NewAccountRepository creates a repository holding the given accounts, oldest first.
func NewAccountRepository(accounts ...*entity.Account) *AccountRepository {
	return &AccountRepository{accounts: accounts}
}

func (r *AccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *AccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.ErrNoAccount
}

func (r *AccountRepository) FindActive(_ context.Context) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if len(r.accounts) == 0 {
		return nil, domainerror.ErrNoAccount
	}
	return r.accounts[len(r.accounts)-1], nil
}

func (r *AccountRepository) List(_ context.Context) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Account, 0, len(r.accounts))
	for i := len(r.accounts) - 1; i >= 0; i-- {
		out = append(out, r.accounts[i])
	}
	return out, nil
}

// GoalRepository is an in-memory adapter.BudgetGoalRepository.
type GoalRepository struct {
	mu    sync.Mutex
	goals map[uuid.UUID]*entity.BudgetGoal
	Err   error
}

// NewGoalRepository creates a repository holding the given goals.
func NewGoalRepository(goals ...*entity.BudgetGoal) *GoalRepository {
	r := &GoalRepository{goals: make(map[uuid.UUID]*entity.BudgetGoal)}
	for _, g := range goals {
		r.goals[g.AccountID] = g
	}
	return r
}

func (r *GoalRepository) Save(_ context.Context, goal *entity.BudgetGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.goals[goal.AccountID] = goal
	return nil
}

func (r *GoalRepository) FindByAccount(_ context.Context, accountID uuid.UUID) (*entity.BudgetGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	goal, ok := r.goals[accountID]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return goal, nil
}

// TransactionRepository is an in-memory adapter.TransactionRepository.
type TransactionRepository struct {
	mu           sync.Mutex
	transactions []*entity.Transaction
	Err          error
}

// NewTransactionRepository creates a repository holding the given transactions in order.
func NewTransactionRepository(transactions ...*entity.Transaction) *TransactionRepository {
	return &TransactionRepository{transactions: transactions}
}

func (r *TransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *TransactionRepository) BulkCreate(_ context.Context, transactions []*entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.transactions = append(r.transactions, transactions...)
	return nil
}

func (r *TransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.ID == id && !t.IsDeleted() {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *TransactionRepository) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.AccountID == accountID && !t.IsDeleted() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TransactionRepository) UpdateCategories(_ context.Context, categories map[uuid.UUID]entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if c, ok := categories[t.ID]; ok {
			t.Category = c
		}
	}
	return nil
}

func (r *TransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.transactions {
		if t.ID == id && !t.IsDeleted() {
			now := time.Now().UTC()
			t.DeletedAt = &now
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *TransactionRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	txs, err := r.FindByAccount(ctx, accountID)
	return int64(len(txs)), err
}

// AnalysisRepository is an in-memory adapter.AnalysisRepository.
type AnalysisRepository struct {
	mu      sync.Mutex
	Records []*entity.AnalysisRecord
	Err     error
}

func (r *AnalysisRepository) Create(_ context.Context, record *entity.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Records = append(r.Records, record)
	return nil
}

func (r *AnalysisRepository) FindLatest(_ context.Context, accountID uuid.UUID) (*entity.AnalysisRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.Records) - 1; i >= 0; i-- {
		if r.Records[i].AccountID == accountID {
			return r.Records[i], nil
		}
	}
	return nil, domainerror.ErrAnalysisNotFound
}

func (r *AnalysisRepository) ListByAccount(_ context.Context, accountID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AnalysisRecord
	for i := len(r.Records) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if r.Records[i].AccountID == accountID {
			out = append(out, r.Records[i])
		}
	}
	return out, nil
}

// SavedStockRepository is an in-memory adapter.SavedStockRepository.
type SavedStockRepository struct {
	mu     sync.Mutex
	stocks map[string]*entity.SavedStock
	Err    error
}

// NewSavedStockRepository creates an empty repository.
func NewSavedStockRepository() *SavedStockRepository {
	return &SavedStockRepository{stocks: make(map[string]*entity.SavedStock)}
}

func (r *SavedStockRepository) Upsert(_ context.Context, stocks []*entity.SavedStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, s := range stocks {
		key := s.AccountID.String() + "/" + s.Symbol
		if existing, ok := r.stocks[key]; ok {
			existing.Name = s.Name
			continue
		}
		r.stocks[key] = s
	}
	return nil
}

func (r *SavedStockRepository) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.SavedStock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.SavedStock
	for _, s := range r.stocks {
		if s.AccountID == accountID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

// RedemptionRepository is an in-memory adapter.RedemptionRepository.
type RedemptionRepository struct {
	mu          sync.Mutex
	Redemptions []*entity.Redemption
	Err         error
}

func (r *RedemptionRepository) Create(_ context.Context, redemption *entity.Redemption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Redemptions = append(r.Redemptions, redemption)
	return nil
}

func (r *RedemptionRepository) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Redemption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Redemption
	for _, red := range r.Redemptions {
		if red.AccountID == accountID {
			out = append(out, red)
		}
	}
	return out, nil
}

// EmailQueueRepository is an in-memory adapter.EmailQueueRepository.
type EmailQueueRepository struct {
	mu   sync.Mutex
	Jobs []*entity.EmailJob
	Err  error
}

func (r *EmailQueueRepository) Create(_ context.Context, job *entity.EmailJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if job.IdempotencyKey != "" {
		for _, existing := range r.Jobs {
			if existing.IdempotencyKey == job.IdempotencyKey {
				return domainerror.ErrEmailAlreadyQueued
			}
		}
	}
	r.Jobs = append(r.Jobs, job)
	return nil
}

func (r *EmailQueueRepository) GetPendingJobs(_ context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.EmailJob
	for _, job := range r.Jobs {
		if job.IsReadyToProcess(now) && len(out) < limit {
			out = append(out, job)
		}
	}
	return out, nil
}

func (r *EmailQueueRepository) Update(_ context.Context, job *entity.EmailJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.Jobs {
		if existing.ID == job.ID {
			r.Jobs[i] = job
			return nil
		}
	}
	return domainerror.ErrEmailJobNotFound
}

func (r *EmailQueueRepository) FindByIdempotencyKey(_ context.Context, key string) (*entity.EmailJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, job := range r.Jobs {
		if job.IdempotencyKey != "" && job.IdempotencyKey == key {
			return job, nil
		}
	}
	return nil, domainerror.ErrEmailJobNotFound
}

func (r *EmailQueueRepository) PruneSent(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.Jobs[:0]
	var deleted int64
	for _, job := range r.Jobs {
		if job.Status == entity.EmailStatusSent && job.ProcessedAt != nil && job.ProcessedAt.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, job)
	}
	r.Jobs = kept
	return deleted, nil
}
