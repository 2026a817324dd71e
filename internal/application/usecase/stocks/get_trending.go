package stocks

import (
	"context"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// GetTrendingOutput represents the trending buy and sell lists.
type GetTrendingOutput struct {
	Buys       []Idea
	Sells      []Idea
	Disclaimer string
}

// GetTrendingUseCase builds the buy and sell lists from the watchlist.
type GetTrendingUseCase struct {
	news adapter.NewsService
}

// NewGetTrendingUseCase creates a new GetTrendingUseCase instance. news may be nil.
func NewGetTrendingUseCase(news adapter.NewsService) *GetTrendingUseCase {
	return &GetTrendingUseCase{news: news}
}

// Execute returns the lists, enriching each entry with the latest headline when one exists.
func (uc *GetTrendingUseCase) Execute(ctx context.Context) (*GetTrendingOutput, error) {
	reasons := headlineReasons(ctx, uc.news, watchlist)

	output := &GetTrendingOutput{
		Buys:       []Idea{},
		Sells:      []Idea{},
		Disclaimer: Disclaimer,
	}
	for i, item := range watchlist {
		idea := Idea{Symbol: item.symbol, Name: item.name, Reason: reasons[i]}
		if item.verdict == entity.StockVerdictBuy {
			output.Buys = append(output.Buys, idea)
		} else {
			output.Sells = append(output.Sells, idea)
		}
	}

	return output, nil
}
