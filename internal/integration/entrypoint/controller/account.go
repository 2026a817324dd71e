package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/application/usecase/onboarding"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// AccountController handles onboarding and account endpoints.
type AccountController struct {
	onboardUseCase    *onboarding.OnboardUseCase
	getAccountUseCase *account.GetAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	onboardUseCase *onboarding.OnboardUseCase,
	getAccountUseCase *account.GetAccountUseCase,
) *AccountController {
	return &AccountController{
		onboardUseCase:    onboardUseCase,
		getAccountUseCase: getAccountUseCase,
	}
}

// Onboard handles POST /api/onboard requests.
func (c *AccountController) Onboard(ctx *gin.Context) {
	// Parse request body; an empty body is allowed
	var req dto.OnboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondInvalidRequest(ctx, err)
		return
	}

	// Execute use case
	output, err := c.onboardUseCase.Execute(ctx.Request.Context(), onboarding.OnboardInput{
		Email: req.Email,
	})
	if err != nil {
		if !handleAccountError(ctx, err) {
			respondInternalError(ctx)
		}
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToOnboardResponse(output))
}

// Get handles GET /api/account requests.
func (c *AccountController) Get(ctx *gin.Context) {
	output, err := c.getAccountUseCase.Execute(ctx.Request.Context())
	if err != nil {
		if !handleAccountError(ctx, err) {
			respondInternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}
