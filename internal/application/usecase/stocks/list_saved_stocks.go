package stocks

import (
	"context"
	"fmt"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// Rating is the verdict shown next to a saved stock.
type Rating struct {
	Symbol  string
	Verdict entity.StockVerdict
	Reason  string
}

// ListSavedStocksOutput represents the saved stocks with their ratings, both ordered by symbol.
type ListSavedStocksOutput struct {
	Saved   []*entity.SavedStock
	Ratings []Rating
}

// ListSavedStocksUseCase returns the watchlist with a verdict per stock.
type ListSavedStocksUseCase struct {
	accountRepo adapter.AccountRepository
	stockRepo   adapter.SavedStockRepository
	news        adapter.NewsService
}

// NewListSavedStocksUseCase creates a new ListSavedStocksUseCase instance. news may be nil.
func NewListSavedStocksUseCase(
	accountRepo adapter.AccountRepository,
	stockRepo adapter.SavedStockRepository,
	news adapter.NewsService,
) *ListSavedStocksUseCase {
	return &ListSavedStocksUseCase{
		accountRepo: accountRepo,
		stockRepo:   stockRepo,
		news:        news,
	}
}

// Execute lists the saved stocks. Symbols on the watchlist take its verdict; others are held.
func (uc *ListSavedStocksUseCase) Execute(ctx context.Context) (*ListSavedStocksOutput, error) {
	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	saved, err := uc.stockRepo.FindByAccount(ctx, acct.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved stocks: %w", err)
	}

	items := make([]watchItem, len(saved))
	for i, s := range saved {
		item, ok := findWatchItem(s.Symbol)
		if !ok {
			item = watchItem{symbol: s.Symbol, name: s.Name, verdict: entity.StockVerdictHold, fallbackReason: holdReason}
		}
		items[i] = item
	}

	reasons := headlineReasons(ctx, uc.news, items)

	ratings := make([]Rating, len(items))
	for i, item := range items {
		ratings[i] = Rating{Symbol: item.symbol, Verdict: item.verdict, Reason: reasons[i]}
	}
	if saved == nil {
		saved = []*entity.SavedStock{}
	}

	return &ListSavedStocksOutput{Saved: saved, Ratings: ratings}, nil
}
