// Package stocks contains the market watchlist use cases.
package stocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// Disclaimer is shown with every list of stock ideas.
const Disclaimer = "Educational information only, not financial advice. Headlines are provided for context; do your own research before investing."

const (
	headlineReasonFormat = "Latest headline: %s"
	holdReason           = "Not on the current watchlist. Hold and keep following the news."

	// maxHeadlineRequests bounds concurrent calls to the news provider.
	maxHeadlineRequests = 4
)

// Idea is a stock with the reason it is listed.
type Idea struct {
	Symbol string
	Name   string
	Reason string
}

type watchItem struct {
	symbol         string
	name           string
	verdict        entity.StockVerdict
	fallbackReason string
}

var watchlist = []watchItem{
	{symbol: "NVDA", name: "NVIDIA Corporation", verdict: entity.StockVerdictBuy, fallbackReason: "Data center demand keeps revenue growing."},
	{symbol: "MSFT", name: "Microsoft Corporation", verdict: entity.StockVerdictBuy, fallbackReason: "Cloud and AI services drive steady earnings."},
	{symbol: "AAPL", name: "Apple Inc.", verdict: entity.StockVerdictBuy, fallbackReason: "Strong services income and a loyal customer base."},
	{symbol: "INTC", name: "Intel Corporation", verdict: entity.StockVerdictSell, fallbackReason: "Losing market share while margins shrink."},
	{symbol: "TSLA", name: "Tesla, Inc.", verdict: entity.StockVerdictSell, fallbackReason: "Price cuts are squeezing profits."},
	{symbol: "PYPL", name: "PayPal Holdings, Inc.", verdict: entity.StockVerdictSell, fallbackReason: "Competition in digital payments slows growth."},
}

func findWatchItem(symbol string) (watchItem, bool) {
	for _, item := range watchlist {
		if item.symbol == symbol {
			return item, true
		}
	}
	return watchItem{}, false
}

// headlineReasons resolves a reason for each item, concurrently. Items without a
// headline keep their fallback reason. It never fails: news errors are logged,
// and a cancelled context stops the remaining lookups.
func headlineReasons(ctx context.Context, news adapter.NewsService, items []watchItem) []string {
	reasons := make([]string, len(items))
	for i, item := range items {
		reasons[i] = item.fallbackReason
	}
	if news == nil || !news.IsAvailable() {
		return reasons
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxHeadlineRequests)
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			headline, err := news.LatestHeadline(gctx, item.symbol, item.name)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if err != nil {
				slog.Warn("Headline lookup failed", "symbol", item.symbol, "error", err)
				return nil
			}
			if headline != "" {
				reasons[i] = fmt.Sprintf(headlineReasonFormat, headline)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Warn("Headline enrichment stopped early", "error", err)
	}

	return reasons
}
