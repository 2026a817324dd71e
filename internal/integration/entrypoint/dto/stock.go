package dto

import (
	"time"

	"github.com/financial-coach/backend/internal/application/usecase/stocks"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// StockRequest is one symbol in a save request.
type StockRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SaveStocksRequest represents the request body for saving stocks.
type SaveStocksRequest struct {
	Stocks []StockRequest `json:"stocks"`
}

// SaveStocksResponse represents the stocks stored by a save request.
type SaveStocksResponse struct {
	Saved []SavedStockResponse `json:"saved"`
}

// StockIdeaResponse represents a trending stock.
type StockIdeaResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// TrendingStocksResponse represents the trending buy and sell lists.
type TrendingStocksResponse struct {
	Buys       []StockIdeaResponse `json:"buys"`
	Sells      []StockIdeaResponse `json:"sells"`
	Disclaimer string              `json:"disclaimer"`
}

// SavedStockResponse represents a watchlisted stock.
type SavedStockResponse struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// StockRatingResponse represents the verdict for a saved stock.
type StockRatingResponse struct {
	Symbol  string `json:"symbol"`
	Verdict string `json:"verdict"`
	Reason  string `json:"reason"`
}

// SavedStocksResponse represents the saved stocks with their ratings.
type SavedStocksResponse struct {
	Saved   []SavedStockResponse  `json:"saved"`
	Ratings []StockRatingResponse `json:"ratings"`
}

// ToSaveStocksInput converts the request body to use case input.
func ToSaveStocksInput(req SaveStocksRequest) stocks.SaveStocksInput {
	input := stocks.SaveStocksInput{Stocks: make([]stocks.StockInput, 0, len(req.Stocks))}
	for _, s := range req.Stocks {
		input.Stocks = append(input.Stocks, stocks.StockInput{Symbol: s.Symbol, Name: s.Name})
	}
	return input
}

func toStockIdeas(ideas []stocks.Idea) []StockIdeaResponse {
	responses := make([]StockIdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		responses = append(responses, StockIdeaResponse{Symbol: idea.Symbol, Name: idea.Name, Reason: idea.Reason})
	}
	return responses
}

// ToTrendingStocksResponse converts the trending output to a response DTO.
func ToTrendingStocksResponse(output *stocks.GetTrendingOutput) TrendingStocksResponse {
	return TrendingStocksResponse{
		Buys:       toStockIdeas(output.Buys),
		Sells:      toStockIdeas(output.Sells),
		Disclaimer: output.Disclaimer,
	}
}

// ToSavedStockResponses converts saved stocks to response DTOs.
func ToSavedStockResponses(saved []*entity.SavedStock) []SavedStockResponse {
	responses := make([]SavedStockResponse, 0, len(saved))
	for _, s := range saved {
		tags := s.Tags
		if tags == nil {
			tags = []string{}
		}
		responses = append(responses, SavedStockResponse{
			ID:        s.ID.String(),
			Symbol:    s.Symbol,
			Name:      s.Name,
			Tags:      tags,
			CreatedAt: s.CreatedAt,
		})
	}
	return responses
}

// ToSavedStocksResponse converts the saved-stocks output to a response DTO.
func ToSavedStocksResponse(output *stocks.ListSavedStocksOutput) SavedStocksResponse {
	ratings := make([]StockRatingResponse, 0, len(output.Ratings))
	for _, r := range output.Ratings {
		ratings = append(ratings, StockRatingResponse{Symbol: r.Symbol, Verdict: string(r.Verdict), Reason: r.Reason})
	}
	return SavedStocksResponse{
		Saved:   ToSavedStockResponses(output.Saved),
		Ratings: ratings,
	}
}
