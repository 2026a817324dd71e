// Package error defines domain-specific errors for the Financial Coach application.
package error

// CommonErrorCode defines error codes shared by every controller.
type CommonErrorCode string

const (
	ErrCodeInvalidRequest CommonErrorCode = "GEN-010001"
	ErrCodeRateLimited    CommonErrorCode = "GEN-020001"
	ErrCodeInternal       CommonErrorCode = "GEN-030001"
)
