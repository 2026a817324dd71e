package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/application/usecase/transaction"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/domain/valueobject"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// transactionDateLayouts are the accepted formats for an explicit purchase date.
var transactionDateLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	addUseCase    *transaction.AddTransactionUseCase
	removeUseCase *transaction.RemoveTransactionUseCase
	clock         Clock
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	addUseCase *transaction.AddTransactionUseCase,
	removeUseCase *transaction.RemoveTransactionUseCase,
	clock Clock,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
		clock:         clockOrDefault(clock),
	}
}

// List handles GET /api/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	// Parse query parameters
	window, ok := parseWindow(ctx)
	if !ok {
		return
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		Window: window,
		Now:    c.clock(),
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(window.String(), output))
}

// Add handles POST /api/add-transaction requests.
func (c *TransactionController) Add(ctx *gin.Context) {
	// Parse request body
	var req dto.AddTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	if req.Amount == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount is required",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return
	}

	// Build input
	input := transaction.AddTransactionInput{
		Description: req.Description,
		Amount:      *req.Amount,
	}

	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		date, err := parseTransactionDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "date must be YYYY-MM-DD or RFC 3339",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = &date
	}

	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}

	// Execute use case
	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToStoredTransactionResponse(output.Transaction))
}

// Remove handles POST /api/remove-transaction requests.
func (c *TransactionController) Remove(ctx *gin.Context) {
	// Parse request body
	var req dto.RemoveTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	// Execute use case
	output, err := c.removeUseCase.Execute(ctx.Request.Context(), transaction.RemoveTransactionInput{
		TransactionID: req.ID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.RemoveTransactionResponse{
		Success: output.Success,
		ID:      req.ID,
	})
}

func parseTransactionDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range transactionDateLayouts {
		date, err := time.Parse(layout, strings.TrimSpace(value))
		if err == nil {
			return date.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseWindow reads the window and n query parameters, writing a 400 when they are invalid.
func parseWindow(ctx *gin.Context) (valueobject.SpendingWindow, bool) {
	window, err := valueobject.ParseSpendingWindow(ctx.Query("window"), ctx.Query("n"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidWindow),
		})
		return valueobject.SpendingWindow{}, false
	}
	return window, true
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	if handleAccountError(ctx, err) {
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	// Generic server error
	respondInternalError(ctx)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingTransactionID,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeInvalidTransactionID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
