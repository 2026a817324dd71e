// Package error defines domain-specific errors for the Financial Coach application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when no budget goal has been set yet.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalNotPositive is returned when the savings goal is zero or negative.
	ErrGoalNotPositive = errors.New("Goal must be greater than 0")

	// ErrBudgetNotPositive is returned when the monthly budget is zero or negative.
	ErrBudgetNotPositive = errors.New("Budget must be greater than 0")

	// ErrGoalExceedsBudget is returned when the savings goal is larger than the budget.
	ErrGoalExceedsBudget = errors.New("Savings goal cannot be greater than budget")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotPositive   GoalErrorCode = "GOL-010001"
	ErrCodeBudgetNotPositive GoalErrorCode = "GOL-010002"
	ErrCodeGoalExceedsBudget GoalErrorCode = "GOL-010003"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Storage errors (03XXXX)
	ErrCodeGoalSaveFailed GoalErrorCode = "GOL-030001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
