// Package error defines domain-specific errors for the Financial Coach application.
package error

import "errors"

// Reward domain errors.
var (
	// ErrInvalidSavings is returned when a savings override cannot be parsed or is out of range.
	ErrInvalidSavings = errors.New("invalid savings amount")
)

// RewardErrorCode defines error codes for reward errors.
// Format: RWD-XXYYYY where XX is category and YYYY is specific error.
type RewardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSavings     RewardErrorCode = "RWD-010001"
	ErrCodeRedemptionRejected RewardErrorCode = "RWD-010002"

	// Storage errors (02XXXX)
	ErrCodeRedemptionSaveFailed RewardErrorCode = "RWD-020001"
)

// RewardError represents a reward error with code and message.
type RewardError struct {
	Code    RewardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RewardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RewardError) Unwrap() error {
	return e.Err
}

// NewRewardError creates a new RewardError with the given code and message.
func NewRewardError(code RewardErrorCode, message string, err error) *RewardError {
	return &RewardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
