package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/application/usecase/investment"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles the investment education endpoint.
type InvestmentController struct {
	ideaUseCase *investment.GetInvestmentIdeaUseCase
	clock       Clock
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(ideaUseCase *investment.GetInvestmentIdeaUseCase, clock Clock) *InvestmentController {
	return &InvestmentController{
		ideaUseCase: ideaUseCase,
		clock:       clockOrDefault(clock),
	}
}

// Idea handles GET /api/investment-idea requests.
func (c *InvestmentController) Idea(ctx *gin.Context) {
	output, err := c.ideaUseCase.Execute(ctx.Request.Context(), investment.GetInvestmentIdeaInput{
		Now: c.clock(),
	})
	if err != nil {
		if handleAccountError(ctx, err) {
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to get investment idea",
			Code:  string(domainerror.ErrCodeAnalysisFailed),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentIdeaResponse(output))
}
