package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// GetChartInput represents the input for the dashboard chart.
type GetChartInput struct {
	UserID uuid.UUID
}

// GetChartOutput represents the chart buckets, ascending by date.
type GetChartOutput struct {
	Buckets []ledger.ChartBucket
}

// GetChartUseCase computes per-date income/expense buckets for the
// dashboard chart.
type GetChartUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetChartUseCase creates a new GetChartUseCase instance.
func NewGetChartUseCase(transactionRepo adapter.TransactionRepository) *GetChartUseCase {
	return &GetChartUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute groups all of the user's transactions by calendar date and keeps
// the most recent dates that actually have transactions.
func (uc *GetChartUseCase) Execute(ctx context.Context, input GetChartInput) (*GetChartOutput, error) {
	items, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, item.Transaction)
	}

	return &GetChartOutput{
		Buckets: ledger.GroupByDateForChart(transactions),
	}, nil
}
