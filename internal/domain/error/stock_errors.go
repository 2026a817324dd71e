// Package error defines domain-specific errors for the Financial Coach application.
package error

import "errors"

// Stock domain errors.
var (
	// ErrNoStocksSelected is returned when a save request carries no symbols.
	ErrNoStocksSelected = errors.New("Select at least one stock to save.")

	// ErrInvalidSymbol is returned when a symbol is blank after trimming.
	ErrInvalidSymbol = errors.New("Enter a stock symbol (e.g., AAPL)")
)

// StockErrorCode defines error codes for stock errors.
// Format: STK-XXYYYY where XX is category and YYYY is specific error.
type StockErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoStocksSelected StockErrorCode = "STK-010001"
	ErrCodeInvalidSymbol    StockErrorCode = "STK-010002"

	// Storage errors (02XXXX)
	ErrCodeStockSaveFailed StockErrorCode = "STK-020001"
)

// StockError represents a stock error with code and message.
type StockError struct {
	Code    StockErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StockError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StockError) Unwrap() error {
	return e.Err
}

// NewStockError creates a new StockError with the given code and message.
func NewStockError(code StockErrorCode, message string, err error) *StockError {
	return &StockError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
