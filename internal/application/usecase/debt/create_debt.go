// Package debt contains debt and receivable use cases.
package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID      uuid.UUID
	Type        entity.DebtType
	PersonName  string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Description string
	DueDate     *time.Time
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if err := validateDebtFields(input.Type, input.PersonName, input.TotalAmount, input.PaidAmount); err != nil {
		return nil, err
	}

	debt := entity.NewDebt(
		input.UserID,
		input.Type,
		input.PersonName,
		input.TotalAmount,
		input.PaidAmount,
		input.Description,
		input.DueDate,
	)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &CreateDebtOutput{Debt: debt}, nil
}

// validateDebtFields validates type, person name and amounts.
func validateDebtFields(debtType entity.DebtType, personName string, totalAmount, paidAmount decimal.Decimal) error {
	if debtType != entity.DebtTypeDebt && debtType != entity.DebtTypeReceivable {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtType,
			"debt type must be 'debt' or 'receivable'",
			domainerror.ErrInvalidDebtType,
		)
	}
	if personName == "" {
		return domainerror.NewDebtError(
			domainerror.ErrCodeMissingPersonName,
			"person name is required",
			domainerror.ErrMissingPersonName,
		)
	}
	if totalAmount.IsNegative() || paidAmount.IsNegative() {
		return domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"amounts must be non-negative numbers",
			domainerror.ErrInvalidDebtAmount,
		)
	}
	return nil
}
