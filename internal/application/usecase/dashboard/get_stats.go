// Package dashboard contains dashboard statistics use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// GetStatsInput represents the input for dashboard statistics. Period is
// the raw query value; empty defaults to monthly. Now is injectable for
// tests and zero means time.Now.
type GetStatsInput struct {
	UserID uuid.UUID
	Period string
	Now    time.Time
}

// GetStatsOutput represents rolling-window totals and outstanding debt
// positions for the dashboard cards.
type GetStatsOutput struct {
	Period          ledger.Period
	Totals          ledger.Totals
	TotalDebt       decimal.Decimal
	TotalReceivable decimal.Decimal
}

// GetStatsUseCase computes dashboard statistics over a rolling window.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	debtRepo        adapter.DebtRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	transactionRepo adapter.TransactionRepository,
	debtRepo adapter.DebtRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

// Execute aggregates income/expense over the rolling window ending now and
// the outstanding debt totals over all records.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	raw := input.Period
	if raw == "" {
		raw = string(ledger.PeriodMonthly)
	}
	period, ok := ledger.ParsePeriod(raw)
	if !ok {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: daily, weekly, or monthly",
			domainerror.ErrInvalidPeriod,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	start := ledger.PeriodStart(now, period)

	items, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, item.Transaction)
	}

	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}

	return &GetStatsOutput{
		Period:          period,
		Totals:          ledger.AggregateTotals(transactions),
		TotalDebt:       entity.OutstandingTotal(debts, entity.DebtTypeDebt),
		TotalReceivable: entity.OutstandingTotal(debts, entity.DebtTypeReceivable),
	}, nil
}
