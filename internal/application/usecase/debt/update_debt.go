package debt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for debt update. Nil fields are
// left unchanged. ClearDueDate removes an existing due date and takes
// precedence over DueDate.
type UpdateDebtInput struct {
	UserID       uuid.UUID
	DebtID       uuid.UUID
	Type         *entity.DebtType
	PersonName   *string
	TotalAmount  *decimal.Decimal
	PaidAmount   *decimal.Decimal
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
}

// UpdateDebtOutput represents the output of debt update.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase handles debt update logic.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt update. Amount changes always go through the
// settlement engine so the stored status is rederived from the stored
// amounts.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.DebtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}

	// Ownership check
	if debt.UserID != input.UserID {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeNotAuthorizedDebt,
			"not authorized to modify this debt",
			domainerror.ErrNotAuthorizedToModifyDebt,
		)
	}

	if input.Type != nil {
		debt.Type = *input.Type
	}
	if input.PersonName != nil {
		debt.PersonName = *input.PersonName
	}
	if input.Description != nil {
		debt.Description = *input.Description
	}
	switch {
	case input.ClearDueDate:
		debt.DueDate = nil
	case input.DueDate != nil:
		debt.DueDate = input.DueDate
	}

	totalAmount := debt.TotalAmount
	if input.TotalAmount != nil {
		totalAmount = *input.TotalAmount
	}
	paidAmount := debt.PaidAmount
	if input.PaidAmount != nil {
		paidAmount = *input.PaidAmount
	}

	if err := validateDebtFields(debt.Type, debt.PersonName, totalAmount, paidAmount); err != nil {
		return nil, err
	}

	debt.ApplyAmounts(totalAmount, paidAmount)
	debt.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	return &UpdateDebtOutput{Debt: debt}, nil
}
