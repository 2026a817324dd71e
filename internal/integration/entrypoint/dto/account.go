package dto

import (
	"time"

	"github.com/financial-coach/backend/internal/application/usecase/onboarding"
	"github.com/financial-coach/backend/internal/domain/entity"
)

// OnboardRequest represents the request body for onboarding.
type OnboardRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// OnboardResponse represents the response after an account is created.
type OnboardResponse struct {
	CustomerID         string `json:"customer_id"`
	AccountID          string `json:"account_id"`
	Nickname           string `json:"nickname"`
	Mock               bool   `json:"mock"`
	SeededTransactions int    `json:"seeded_transactions"`
	SeededAtBank       int    `json:"seeded_at_bank"`
	Warning            string `json:"warning,omitempty"`
}

// AccountResponse represents the active account.
type AccountResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	AccountID  string    `json:"account_id"`
	Nickname   string    `json:"nickname"`
	Email      string    `json:"email,omitempty"`
	Mock       bool      `json:"mock"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToOnboardResponse converts the onboarding output to a response DTO.
func ToOnboardResponse(output *onboarding.OnboardOutput) OnboardResponse {
	response := OnboardResponse{
		CustomerID:         output.Account.CustomerID,
		AccountID:          output.Account.AccountID,
		Nickname:           output.Account.Nickname,
		Mock:               output.Mock,
		SeededTransactions: output.SeededLocally,
		SeededAtBank:       output.SeededAtBank,
	}
	if output.BankSeedingError != nil {
		response.Warning = "Sample purchases could not be created at the bank; local data is available."
	}
	return response
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID.String(),
		CustomerID: a.CustomerID,
		AccountID:  a.AccountID,
		Nickname:   a.Nickname,
		Email:      a.Email,
		Mock:       a.IsMock(),
		CreatedAt:  a.CreatedAt,
	}
}
