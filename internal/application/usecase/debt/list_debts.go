package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
)

// ListDebtsInput represents the input for debt listing. Type and Status
// are optional filters applied after the user scope.
type ListDebtsInput struct {
	UserID uuid.UUID
	Type   *entity.DebtType
	Status *entity.DebtStatus
}

// ListDebtsOutput represents the output of debt listing.
type ListDebtsOutput struct {
	Debts []*entity.Debt
}

// ListDebtsUseCase handles debt listing logic.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute retrieves the user's debts newest first, optionally filtered by
// type and derived status.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	if input.Type == nil && input.Status == nil {
		return &ListDebtsOutput{Debts: debts}, nil
	}

	filtered := make([]*entity.Debt, 0, len(debts))
	for _, d := range debts {
		if input.Type != nil && d.Type != *input.Type {
			continue
		}
		if input.Status != nil && d.Status != *input.Status {
			continue
		}
		filtered = append(filtered, d)
	}

	return &ListDebtsOutput{Debts: filtered}, nil
}
