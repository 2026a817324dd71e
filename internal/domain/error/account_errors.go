// Package error defines domain-specific errors for the Financial Coach application.
package error

import "errors"

// Account and onboarding domain errors.
var (
	// ErrNoAccount is returned when an operation needs an onboarded account and there is none.
	ErrNoAccount = errors.New("No account found. Please complete onboarding first.")

	// ErrOnboardingFailed is returned when the account could not be created.
	ErrOnboardingFailed = errors.New("Failed to create your financial account. Please try again.")

	// ErrBankUnavailable is returned by banking clients when the provider cannot be reached.
	ErrBankUnavailable = errors.New("banking provider unavailable")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeNoAccount AccountErrorCode = "ACC-010001"

	// Onboarding errors (02XXXX)
	ErrCodeOnboardingFailed AccountErrorCode = "ACC-020001"
	ErrCodeSeedingFailed    AccountErrorCode = "ACC-020002"

	// Provider errors (03XXXX)
	ErrCodeBankUnavailable AccountErrorCode = "ACC-030001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
