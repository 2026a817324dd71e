package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/application/usecase/creditcard"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card recommendation endpoints.
type CreditCardController struct {
	recommendUseCase *creditcard.RecommendCardsUseCase
	clock            Clock
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(recommendUseCase *creditcard.RecommendCardsUseCase, clock Clock) *CreditCardController {
	return &CreditCardController{
		recommendUseCase: recommendUseCase,
		clock:            clockOrDefault(clock),
	}
}

// Recommend handles GET /api/credit-cards requests.
func (c *CreditCardController) Recommend(ctx *gin.Context) {
	output, err := c.recommendUseCase.Execute(ctx.Request.Context(), creditcard.RecommendCardsInput{
		Now: c.clock(),
	})
	if err != nil {
		if !handleAccountError(ctx, err) {
			respondInternalError(ctx)
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardsResponse(output))
}
