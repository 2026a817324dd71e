// Package error defines domain-specific errors for the Financial Coach application.
package error

import "errors"

// Analysis domain errors.
var (
	// ErrAnalysisFailed is returned when an analysis could not be produced.
	ErrAnalysisFailed = errors.New("Analysis failed. Please try again.")

	// ErrInvalidWindow is returned when the requested spending window is unknown.
	ErrInvalidWindow = errors.New("invalid spending window")

	// ErrInvalidHistoryView is returned when the history view is neither monthly nor quarterly.
	ErrInvalidHistoryView = errors.New("invalid history view")

	// ErrAnalysisNotFound is returned when an account has no stored analysis.
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrAIUnavailable is returned by AI adapters that are not configured.
	ErrAIUnavailable = errors.New("ai service is not configured")
)

// AnalysisErrorCode defines error codes for analysis errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalysisErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidWindow      AnalysisErrorCode = "ANL-010001"
	ErrCodeInvalidHistoryView AnalysisErrorCode = "ANL-010002"

	// Processing errors (02XXXX)
	ErrCodeAnalysisFailed    AnalysisErrorCode = "ANL-020001"
	ErrCodeAnalysisNotStored AnalysisErrorCode = "ANL-020002"

	// AI provider errors (03XXXX)
	ErrCodeAIServiceUnavailable AnalysisErrorCode = "ANL-030001"
	ErrCodeAIRateLimited        AnalysisErrorCode = "ANL-030002"
	ErrCodeAIAuthError          AnalysisErrorCode = "ANL-030003"
	ErrCodeAITimeout            AnalysisErrorCode = "ANL-030004"
	ErrCodeAIParseError         AnalysisErrorCode = "ANL-030005"
	ErrCodeAIUnknownError       AnalysisErrorCode = "ANL-030006"
)

// AnalysisError represents an analysis error with code and message.
type AnalysisError struct {
	Code    AnalysisErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError with the given code and message.
func NewAnalysisError(code AnalysisErrorCode, message string, err error) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
