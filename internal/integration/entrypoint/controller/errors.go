// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// Clock returns the current time. Controllers that depend on "now" take one
// so tests can pin the calendar.
type Clock func() time.Time

func clockOrDefault(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// handleAccountError writes the response for account errors shared by every
// endpoint that needs an onboarded account. It reports whether err was handled.
func handleAccountError(ctx *gin.Context, err error) bool {
	var accountErr *domainerror.AccountError
	if !errors.As(err, &accountErr) {
		return false
	}

	statusCode := http.StatusInternalServerError
	switch accountErr.Code {
	case domainerror.ErrCodeNoAccount:
		statusCode = http.StatusNotFound
	case domainerror.ErrCodeBankUnavailable:
		statusCode = http.StatusBadGateway
	}

	ctx.JSON(statusCode, dto.ErrorResponse{
		Error: accountErr.Message,
		Code:  string(accountErr.Code),
	})
	return true
}

// respondInternalError writes the generic server error.
func respondInternalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// respondInvalidRequest writes a 400 for a body or query that could not be parsed.
func respondInvalidRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeInvalidRequest),
	})
}
