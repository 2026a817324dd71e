// Package analysis contains spending analysis use cases.
package analysis

import (
	"context"
	"errors"
	"strings"

	domainerror "github.com/financial-coach/backend/internal/domain/error"
)

// aiErrorMessages contains the user-facing message for each AI failure code.
var aiErrorMessages = map[domainerror.AnalysisErrorCode]string{
	domainerror.ErrCodeAIServiceUnavailable: "The AI coach is temporarily unavailable. Please try again later.",
	domainerror.ErrCodeAIRateLimited:        "The AI coach is busy right now. Please wait a few minutes and try again.",
	domainerror.ErrCodeAIAuthError:          "The AI coach is misconfigured. Please contact support.",
	domainerror.ErrCodeAITimeout:            "The AI coach took too long to answer. Please try again.",
	domainerror.ErrCodeAIParseError:         "The AI coach returned an unreadable answer. Please try again.",
	domainerror.ErrCodeAIUnknownError:       "Something unexpected happened while talking to the AI coach. Please try again.",
}

// classifyAIError maps a raw AI provider error to a coded AnalysisError.
// The boolean reports whether retrying later could succeed.
func classifyAIError(err error) (*domainerror.AnalysisError, bool) {
	var coded *domainerror.AnalysisError
	if errors.As(err, &coded) {
		return coded, coded.Code != domainerror.ErrCodeAIAuthError
	}

	errStr := strings.ToLower(err.Error())

	newErr := func(code domainerror.AnalysisErrorCode) *domainerror.AnalysisError {
		return domainerror.NewAnalysisError(code, aiErrorMessages[code], err)
	}

	// Timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newErr(domainerror.ErrCodeAITimeout), true
	}

	if errors.Is(err, domainerror.ErrAIUnavailable) {
		return newErr(domainerror.ErrCodeAIServiceUnavailable), false
	}

	// Rate limiting
	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return newErr(domainerror.ErrCodeAIRateLimited), true
	}

	// Authentication
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return newErr(domainerror.ErrCodeAIAuthError), false
	}

	// Network/connection
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return newErr(domainerror.ErrCodeAIServiceUnavailable), true
	}

	// Parse
	if strings.Contains(errStr, "parse") || strings.Contains(errStr, "json") ||
		strings.Contains(errStr, "unmarshal") || strings.Contains(errStr, "decode") {
		return newErr(domainerror.ErrCodeAIParseError), true
	}

	return newErr(domainerror.ErrCodeAIUnknownError), true
}
