// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashbook/backend/internal/application/usecase/dashboard"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
	"github.com/cashbook/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	statsUseCase *dashboard.GetStatsUseCase
	chartUseCase *dashboard.GetChartUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	statsUseCase *dashboard.GetStatsUseCase,
	chartUseCase *dashboard.GetChartUseCase,
) *DashboardController {
	return &DashboardController{
		statsUseCase: statsUseCase,
		chartUseCase: chartUseCase,
	}
}

// Stats handles GET /dashboard/stats requests. The period query parameter
// defaults to monthly.
func (c *DashboardController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), dashboard.GetStatsInput{
		UserID: userID,
		Period: ctx.Query("period"),
	})
	if err != nil {
		var ledgerErr *domainerror.LedgerError
		if errors.As(err, &ledgerErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: ledgerErr.Message,
				Code:  string(ledgerErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard statistics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}

// Chart handles GET /dashboard/chart requests.
func (c *DashboardController) Chart(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.chartUseCase.Execute(ctx.Request.Context(), dashboard.GetChartInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard chart",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardChartResponse(output.Buckets))
}
