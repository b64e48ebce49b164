// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cashbook/backend/internal/application/usecase/debt"
	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// CreateDebtRequest represents the request body for debt creation. TotalAmount
// is a pointer so that binding distinguishes an absent field from a valid zero
// total.
type CreateDebtRequest struct {
	Type        string   `json:"type" binding:"required,oneof=debt receivable"`
	PersonName  string   `json:"person_name" binding:"required,min=1,max=100"`
	TotalAmount *float64 `json:"total_amount" binding:"required,gte=0"`
	PaidAmount  float64  `json:"paid_amount" binding:"gte=0"`
	Description string   `json:"description,omitempty" binding:"omitempty,max=1000"`
	DueDate     *string  `json:"due_date,omitempty"`
}

// UpdateDebtRequest represents the request body for debt update.
type UpdateDebtRequest struct {
	Type         *string  `json:"type,omitempty" binding:"omitempty,oneof=debt receivable"`
	PersonName   *string  `json:"person_name,omitempty" binding:"omitempty,min=1,max=100"`
	TotalAmount  *float64 `json:"total_amount,omitempty" binding:"omitempty,gte=0"`
	PaidAmount   *float64 `json:"paid_amount,omitempty" binding:"omitempty,gte=0"`
	Description  *string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	DueDate      *string  `json:"due_date,omitempty"`
	ClearDueDate bool     `json:"clear_due_date,omitempty"`
}

// DebtResponse represents a single debt record in API responses.
type DebtResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Type             string    `json:"type"`
	PersonName       string    `json:"person_name"`
	TotalAmount      string    `json:"total_amount"`
	PaidAmount       string    `json:"paid_amount"`
	RemainingBalance string    `json:"remaining_balance"`
	ProgressPercent  string    `json:"progress_percent"`
	Description      string    `json:"description"`
	DueDate          *string   `json:"due_date,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// DebtSummaryResponse represents outstanding totals per direction.
type DebtSummaryResponse struct {
	TotalDebt       string `json:"total_debt"`
	TotalReceivable string `json:"total_receivable"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	response := DebtResponse{
		ID:               d.ID.String(),
		UserID:           d.UserID.String(),
		Type:             string(d.Type),
		PersonName:       d.PersonName,
		TotalAmount:      d.TotalAmount.String(),
		PaidAmount:       d.PaidAmount.String(),
		RemainingBalance: d.RemainingBalance().String(),
		ProgressPercent:  d.ProgressPercent().Round(2).String(),
		Description:      d.Description,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.DueDate != nil {
		dueDate := d.DueDate.Format(ledger.DateLayout)
		response.DueDate = &dueDate
	}
	return response
}

// ToDebtListResponse converts a list of Debt entities to DebtListResponse.
func ToDebtListResponse(debts []*entity.Debt) DebtListResponse {
	responses := make([]DebtResponse, len(debts))
	for i, d := range debts {
		responses[i] = ToDebtResponse(d)
	}
	return DebtListResponse{
		Debts: responses,
	}
}

// ToDebtSummaryResponse converts summary output to a DebtSummaryResponse DTO.
func ToDebtSummaryResponse(output *debt.GetDebtSummaryOutput) DebtSummaryResponse {
	return DebtSummaryResponse{
		TotalDebt:       output.TotalDebt.String(),
		TotalReceivable: output.TotalReceivable.String(),
	}
}
