package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/application/usecase/stocks"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// StockController handles the stock watchlist endpoints.
type StockController struct {
	trendingUseCase  *stocks.GetTrendingUseCase
	saveUseCase      *stocks.SaveStocksUseCase
	listSavedUseCase *stocks.ListSavedStocksUseCase
}

// NewStockController creates a new stock controller instance.
func NewStockController(
	trendingUseCase *stocks.GetTrendingUseCase,
	saveUseCase *stocks.SaveStocksUseCase,
	listSavedUseCase *stocks.ListSavedStocksUseCase,
) *StockController {
	return &StockController{
		trendingUseCase:  trendingUseCase,
		saveUseCase:      saveUseCase,
		listSavedUseCase: listSavedUseCase,
	}
}

// Trending handles GET /api/stocks-trending requests.
func (c *StockController) Trending(ctx *gin.Context) {
	output, err := c.trendingUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendingStocksResponse(output))
}

// Save handles POST /api/stocks/save requests.
func (c *StockController) Save(ctx *gin.Context) {
	// Parse request body
	var req dto.SaveStocksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	// Execute use case
	output, err := c.saveUseCase.Execute(ctx.Request.Context(), dto.ToSaveStocksInput(req))
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.SaveStocksResponse{Saved: dto.ToSavedStockResponses(output.Saved)})
}

// Saved handles GET /api/stocks/saved requests.
func (c *StockController) Saved(ctx *gin.Context) {
	output, err := c.listSavedUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavedStocksResponse(output))
}

// handleStockError handles stock errors and returns appropriate HTTP responses.
func (c *StockController) handleStockError(ctx *gin.Context, err error) {
	if handleAccountError(ctx, err) {
		return
	}

	var stockErr *domainerror.StockError
	if errors.As(err, &stockErr) {
		statusCode := c.getStatusCodeForStockError(stockErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: stockErr.Message,
			Code:  string(stockErr.Code),
		})
		return
	}

	// Generic server error
	respondInternalError(ctx)
}

// getStatusCodeForStockError maps stock error codes to HTTP status codes.
func (c *StockController) getStatusCodeForStockError(code domainerror.StockErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoStocksSelected, domainerror.ErrCodeInvalidSymbol:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
