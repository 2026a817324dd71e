package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/entrypoint/dto"
)

// AnalysisController handles the spending summary and savings history endpoints.
type AnalysisController struct {
	analysisUseCase *analysis.GetAnalysisUseCase
	historyUseCase  *analysis.GetHistoryUseCase
	listUseCase     *analysis.ListAnalysesUseCase
	clock           Clock
}

// NewAnalysisController creates a new analysis controller instance.
func NewAnalysisController(
	analysisUseCase *analysis.GetAnalysisUseCase,
	historyUseCase *analysis.GetHistoryUseCase,
	listUseCase *analysis.ListAnalysesUseCase,
	clock Clock,
) *AnalysisController {
	return &AnalysisController{
		analysisUseCase: analysisUseCase,
		historyUseCase:  historyUseCase,
		listUseCase:     listUseCase,
		clock:           clockOrDefault(clock),
	}
}

// Analysis handles GET /api/analysis requests.
func (c *AnalysisController) Analysis(ctx *gin.Context) {
	window, ok := parseWindow(ctx)
	if !ok {
		return
	}

	output, err := c.analysisUseCase.Execute(ctx.Request.Context(), analysis.GetAnalysisInput{
		Window: window,
		Now:    c.clock(),
	})
	if err != nil {
		c.handleAnalysisError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisResponse(output))
}

// History handles GET /api/history requests.
func (c *AnalysisController) History(ctx *gin.Context) {
	excludeCurrent := true
	if raw, ok := ctx.GetQuery("exclude_current"); ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "exclude_current must be true or false",
				Code:  string(domainerror.ErrCodeInvalidRequest),
			})
			return
		}
		excludeCurrent = parsed
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), analysis.GetHistoryInput{
		View:           ctx.Query("view"),
		ExcludeCurrent: excludeCurrent,
		Now:            c.clock(),
	})
	if err != nil {
		c.handleAnalysisError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryResponse(output))
}

// List handles GET /api/analyses requests.
func (c *AnalysisController) List(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a non-negative integer",
				Code:  string(domainerror.ErrCodeInvalidRequest),
			})
			return
		}
		limit = parsed
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), analysis.ListAnalysesInput{Limit: limit})
	if err != nil {
		c.handleAnalysisError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisListResponse(output.Analyses))
}

// handleAnalysisError handles analysis errors and returns appropriate HTTP responses.
func (c *AnalysisController) handleAnalysisError(ctx *gin.Context, err error) {
	if handleAccountError(ctx, err) {
		return
	}

	var analysisErr *domainerror.AnalysisError
	if errors.As(err, &analysisErr) {
		statusCode := c.getStatusCodeForAnalysisError(analysisErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: analysisErr.Message,
			Code:  string(analysisErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: domainerror.ErrAnalysisFailed.Error(),
		Code:  string(domainerror.ErrCodeAnalysisFailed),
	})
}

// getStatusCodeForAnalysisError maps analysis error codes to HTTP status codes.
func (c *AnalysisController) getStatusCodeForAnalysisError(code domainerror.AnalysisErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidWindow, domainerror.ErrCodeInvalidHistoryView:
		return http.StatusBadRequest
	case domainerror.ErrCodeAIServiceUnavailable, domainerror.ErrCodeAIRateLimited:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
