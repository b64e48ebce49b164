package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
)

// GetDebtSummaryInput represents the input for the debt summary.
type GetDebtSummaryInput struct {
	UserID uuid.UUID
}

// GetDebtSummaryOutput represents outstanding totals per direction.
// Fully paid records contribute nothing.
type GetDebtSummaryOutput struct {
	TotalDebt       decimal.Decimal
	TotalReceivable decimal.Decimal
}

// GetDebtSummaryUseCase computes outstanding debt and receivable totals.
type GetDebtSummaryUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewGetDebtSummaryUseCase creates a new GetDebtSummaryUseCase instance.
func NewGetDebtSummaryUseCase(debtRepo adapter.DebtRepository) *GetDebtSummaryUseCase {
	return &GetDebtSummaryUseCase{
		debtRepo: debtRepo,
	}
}

// Execute computes the summary over all of the user's debt records.
func (uc *GetDebtSummaryUseCase) Execute(ctx context.Context, input GetDebtSummaryInput) (*GetDebtSummaryOutput, error) {
	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	return &GetDebtSummaryOutput{
		TotalDebt:       entity.OutstandingTotal(debts, entity.DebtTypeDebt),
		TotalReceivable: entity.OutstandingTotal(debts, entity.DebtTypeReceivable),
	}, nil
}
