package dto

import (
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/usecase/transaction"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// AddTransactionRequest represents the request body for adding a purchase.
type AddTransactionRequest struct {
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty" binding:"omitempty,oneof=Need Want"`
}

// RemoveTransactionRequest represents the request body for removing a purchase.
type RemoveTransactionRequest struct {
	ID string `json:"id"`
}

// TransactionResponse represents a normalized transaction in API responses.
type TransactionResponse struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	Date          string `json:"date"`
	SyntheticDate bool   `json:"synthetic_date"`
}

// StoredTransactionResponse represents a transaction as it was persisted.
type StoredTransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Category    string  `json:"category"`
	Date        *string `json:"date,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Window        string                `json:"window"`
	Transactions  []TransactionResponse `json:"transactions"`
	Count         int                   `json:"count"`
	NeedsTotal    string                `json:"needs_total"`
	WantsTotal    string                `json:"wants_total"`
	TotalSpending string                `json:"total_spending"`
}

// RemoveTransactionResponse represents the response after a removal.
type RemoveTransactionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ToTransactionResponse converts an engine transaction to a response DTO.
func ToTransactionResponse(t coach.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Description:   t.Description,
		Amount:        Money(t.Amount),
		Category:      string(t.Category),
		Date:          isoDate(t.Date),
		SyntheticDate: t.Synthesized,
	}
}

// ToTransactionResponses converts a slice of engine transactions, preserving order.
func ToTransactionResponses(txs []coach.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		responses = append(responses, ToTransactionResponse(t))
	}
	return responses
}

// ToStoredTransactionResponse converts a domain Transaction entity to a response DTO.
func ToStoredTransactionResponse(t *entity.Transaction) StoredTransactionResponse {
	response := StoredTransactionResponse{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      Money(t.Amount),
		Category:    string(t.Category),
	}
	if t.Date != nil {
		date := isoDate(*t.Date)
		response.Date = &date
	}
	return response
}

// ToTransactionListResponse converts the list output to a response DTO.
func ToTransactionListResponse(window string, output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Window:        window,
		Transactions:  ToTransactionResponses(output.Transactions),
		Count:         len(output.Transactions),
		NeedsTotal:    Money(output.Totals.Needs),
		WantsTotal:    Money(output.Totals.Wants),
		TotalSpending: Money(output.Totals.Total),
	}
}
