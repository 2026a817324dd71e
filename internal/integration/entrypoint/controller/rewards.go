package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/usecase/rewards"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// RewardsController handles reward points endpoints.
type RewardsController struct {
	getUseCase    *rewards.GetRewardsUseCase
	redeemUseCase *rewards.RedeemRewardUseCase
	clock         Clock
}

// NewRewardsController creates a new rewards controller instance.
func NewRewardsController(
	getUseCase *rewards.GetRewardsUseCase,
	redeemUseCase *rewards.RedeemRewardUseCase,
	clock Clock,
) *RewardsController {
	return &RewardsController{
		getUseCase:    getUseCase,
		redeemUseCase: redeemUseCase,
		clock:         clockOrDefault(clock),
	}
}

// Get handles GET /api/rewards requests.
func (c *RewardsController) Get(ctx *gin.Context) {
	input := rewards.GetRewardsInput{Now: c.clock()}

	// Parse the optional savings override
	if raw := ctx.Query("savings"); raw != "" {
		savings, err := decimal.NewFromString(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "savings must be a number",
				Code:  string(domainerror.ErrCodeInvalidSavings),
			})
			return
		}
		input.Savings = &savings
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRewardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRewardsResponse(output))
}

// Redeem handles POST /api/rewards/redeem requests.
func (c *RewardsController) Redeem(ctx *gin.Context) {
	// Parse request body
	var req dto.RedeemRewardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	// Execute use case
	output, err := c.redeemUseCase.Execute(ctx.Request.Context(), rewards.RedeemRewardInput{
		Retailer: req.Retailer,
		Savings:  req.Savings,
		Now:      c.clock(),
	})
	if err != nil {
		c.handleRewardError(ctx, err)
		return
	}

	if !output.Redemption.Accepted {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: output.Redemption.Message,
			Code:  string(domainerror.ErrCodeRedemptionRejected),
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToRedeemRewardResponse(output))
}

// handleRewardError handles reward errors and returns appropriate HTTP responses.
func (c *RewardsController) handleRewardError(ctx *gin.Context, err error) {
	if handleAccountError(ctx, err) {
		return
	}

	var rewardErr *domainerror.RewardError
	if errors.As(err, &rewardErr) {
		statusCode := c.getStatusCodeForRewardError(rewardErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rewardErr.Message,
			Code:  string(rewardErr.Code),
		})
		return
	}

	// Generic server error
	respondInternalError(ctx)
}

// getStatusCodeForRewardError maps reward error codes to HTTP status codes.
func (c *RewardsController) getStatusCodeForRewardError(code domainerror.RewardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSavings, domainerror.ErrCodeRedemptionRejected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
