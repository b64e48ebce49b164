// Package ledger contains general-ledger and export use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	domainledger "github.com/cashbook/backend/internal/domain/ledger"
)

// GetLedgerInput represents the input for the general-ledger query. Dates
// are raw query values validated and parsed here.
type GetLedgerInput struct {
	UserID    uuid.UUID
	StartDate string
	EndDate   string
}

// GetLedgerOutput represents the ledger entries with running balances and
// the aggregate totals over the requested range.
type GetLedgerOutput struct {
	Entries []domainledger.BalanceEntry
	Totals  domainledger.Totals
	Start   time.Time
	End     time.Time
}

// GetLedgerUseCase handles the general-ledger query.
type GetLedgerUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(transactionRepo adapter.TransactionRepository) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute loads the user's transactions within the range and computes the
// chronological running balance. An empty range yields an empty ledger.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	start, end, err := ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	items, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	entries := domainledger.ComputeRunningBalance(items)

	transactions := make([]*entity.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, item.Transaction)
	}

	return &GetLedgerOutput{
		Entries: entries,
		Totals:  domainledger.AggregateTotals(transactions),
		Start:   start,
		End:     end,
	}, nil
}

// ParseDateRange validates and parses a start/end calendar-date pair. Both
// dates are required, must be YYYY-MM-DD and end must not precede start.
func ParseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" {
		return time.Time{}, time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if endDate == "" {
		return time.Time{}, time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	start, err := time.ParseInLocation(domainledger.DateLayout, startDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDate,
			"start_date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDateFormat,
		)
	}
	end, err := time.ParseInLocation(domainledger.DateLayout, endDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDate,
			"end_date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDateFormat,
		)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return start, end, nil
}
