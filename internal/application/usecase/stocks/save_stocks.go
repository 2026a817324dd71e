package stocks

import (
	"context"
	"log/slog"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// StockInput is one stock in a save request.
type StockInput struct {
	Symbol string
	Name   string
}

// SaveStocksInput represents the input for saving stocks.
type SaveStocksInput struct {
	Stocks []StockInput
}

// SaveStocksOutput represents the output of saving stocks.
type SaveStocksOutput struct {
	Saved []*entity.SavedStock
}

// SaveStocksUseCase adds stocks to the active account's watchlist.
type SaveStocksUseCase struct {
	accountRepo adapter.AccountRepository
	stockRepo   adapter.SavedStockRepository
}

// NewSaveStocksUseCase creates a new SaveStocksUseCase instance.
func NewSaveStocksUseCase(accountRepo adapter.AccountRepository, stockRepo adapter.SavedStockRepository) *SaveStocksUseCase {
	return &SaveStocksUseCase{
		accountRepo: accountRepo,
		stockRepo:   stockRepo,
	}
}

// Execute validates, dedupes and stores the stocks. The first occurrence of a symbol wins.
func (uc *SaveStocksUseCase) Execute(ctx context.Context, input SaveStocksInput) (*SaveStocksOutput, error) {
	if len(input.Stocks) == 0 {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeNoStocksSelected,
			domainerror.ErrNoStocksSelected.Error(),
			domainerror.ErrNoStocksSelected,
		)
	}

	acct, err := account.ResolveActive(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(input.Stocks))
	stocks := make([]*entity.SavedStock, 0, len(input.Stocks))
	for _, s := range input.Stocks {
		symbol := entity.NormalizeSymbol(s.Symbol)
		if symbol == "" {
			return nil, domainerror.NewStockError(
				domainerror.ErrCodeInvalidSymbol,
				domainerror.ErrInvalidSymbol.Error(),
				domainerror.ErrInvalidSymbol,
			)
		}
		if seen[symbol] {
			continue
		}
		seen[symbol] = true
		stocks = append(stocks, entity.NewSavedStock(acct.ID, symbol, s.Name))
	}

	if err := uc.stockRepo.Upsert(ctx, stocks); err != nil {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeStockSaveFailed,
			"Failed to save selected stocks.",
			err,
		)
	}

	slog.Info("Stocks saved", "account_id", acct.ID, "count", len(stocks))

	return &SaveStocksOutput{Saved: stocks}, nil
}
