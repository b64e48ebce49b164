// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	usecaseledger "github.com/cashbook/backend/internal/application/usecase/ledger"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
	"github.com/cashbook/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles general-ledger endpoints.
type LedgerController struct {
	getUseCase    *usecaseledger.GetLedgerUseCase
	exportUseCase *usecaseledger.ExportLedgerUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	getUseCase *usecaseledger.GetLedgerUseCase,
	exportUseCase *usecaseledger.ExportLedgerUseCase,
) *LedgerController {
	return &LedgerController{
		getUseCase:    getUseCase,
		exportUseCase: exportUseCase,
	}
}

// Get handles GET /ledger requests. Both start_date and end_date query
// parameters are required.
func (c *LedgerController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate := ctx.Query("start_date")
	endDate := ctx.Query("end_date")

	output, err := c.getUseCase.Execute(ctx.Request.Context(), usecaseledger.GetLedgerInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output.Entries, output.Totals, startDate, endDate))
}

// Export handles GET /ledger/export requests and streams the ledger as a
// CSV attachment.
func (c *LedgerController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), usecaseledger.ExportLedgerInput{
		UserID:    userID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "text/csv", output.Content)
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := c.getStatusCodeForLedgerError(ledgerErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeInvalidPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
