// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/usecase/debt"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/domain/ledger"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
	"github.com/cashbook/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles debt and receivable endpoints.
type DebtController struct {
	listUseCase    *debt.ListDebtsUseCase
	createUseCase  *debt.CreateDebtUseCase
	updateUseCase  *debt.UpdateDebtUseCase
	deleteUseCase  *debt.DeleteDebtUseCase
	summaryUseCase *debt.GetDebtSummaryUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	summaryUseCase *debt.GetDebtSummaryUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := debt.ListDebtsInput{
		UserID: userID,
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		debtType := entity.DebtType(typeStr)
		input.Type = &debtType
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.DebtStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve debts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDebtFields),
		})
		return
	}

	input := debt.CreateDebtInput{
		UserID:      userID,
		Type:        entity.DebtType(req.Type),
		PersonName:  req.PersonName,
		TotalAmount: decimal.NewFromFloat(*req.TotalAmount),
		PaidAmount:  decimal.NewFromFloat(req.PaidAmount),
		Description: req.Description,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.ParseInLocation(ledger.DateLayout, *req.DueDate, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "due_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDueDate),
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Update handles PUT /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := debt.UpdateDebtInput{
		UserID:       userID,
		DebtID:       debtID,
		PersonName:   req.PersonName,
		Description:  req.Description,
		ClearDueDate: req.ClearDueDate,
	}

	if req.Type != nil {
		debtType := entity.DebtType(*req.Type)
		input.Type = &debtType
	}
	if req.TotalAmount != nil {
		totalAmount := decimal.NewFromFloat(*req.TotalAmount)
		input.TotalAmount = &totalAmount
	}
	if req.PaidAmount != nil {
		paidAmount := decimal.NewFromFloat(*req.PaidAmount)
		input.PaidAmount = &paidAmount
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.ParseInLocation(ledger.DateLayout, *req.DueDate, time.UTC)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "due_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDueDate),
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	debtID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid debt ID format",
		})
		return
	}

	input := debt.DeleteDebtInput{
		UserID: userID,
		DebtID: debtID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /debts/summary requests.
func (c *DebtController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), debt.GetDebtSummaryInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute debt summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtSummaryResponse(output))
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		statusCode := c.getStatusCodeForDebtError(debtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedDebt:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDebtType,
		domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeMissingPersonName,
		domainerror.ErrCodeInvalidDueDate,
		domainerror.ErrCodeMissingDebtFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
