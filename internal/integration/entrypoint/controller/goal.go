package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/application/usecase/goal"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	setUseCase *goal.SetGoalUseCase
	getUseCase *goal.GetGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(setUseCase *goal.SetGoalUseCase, getUseCase *goal.GetGoalUseCase) *GoalController {
	return &GoalController{
		setUseCase: setUseCase,
		getUseCase: getUseCase,
	}
}

// Set handles POST /api/set-goal requests.
func (c *GoalController) Set(ctx *gin.Context) {
	// Parse request body
	var req dto.SetGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	// Execute use case
	output, err := c.setUseCase.Execute(ctx.Request.Context(), goal.SetGoalInput{
		SavingsGoal:   *req.Goal,
		MonthlyBudget: *req.Budget,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToSetGoalResponse(output.Goal))
}

// Get handles GET /api/goal requests.
func (c *GoalController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	if handleAccountError(ctx, err) {
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	respondInternalError(ctx)
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalNotPositive,
		domainerror.ErrCodeBudgetNotPositive,
		domainerror.ErrCodeGoalExceedsBudget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
