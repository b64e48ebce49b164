// Package ledger implements the pure ledger computations: date-range
// filtering, running balances, aggregate totals, rolling-window periods and
// chart buckets. Everything here operates on in-memory slices and performs no
// I/O, so the functions are safe to call concurrently.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// DateLayout is the calendar-date format used throughout the ledger.
const DateLayout = "2006-01-02"

// BalanceEntry pairs a transaction with the cumulative balance after applying
// it in chronological order.
type BalanceEntry struct {
	Transaction *entity.Transaction
	Category    *entity.Category
	Balance     decimal.Decimal
}

// Totals holds aggregate income, expense and net balance for a set of
// transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// dateOf truncates a timestamp to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterByDateRange keeps transactions whose date lies within [start, end]
// inclusive. Both bounds are calendar dates; time-of-day is ignored. An empty
// result is not an error.
func FilterByDateRange(entries []*entity.TransactionWithCategory, start, end time.Time) []*entity.TransactionWithCategory {
	startDay := dateOf(start)
	endDay := dateOf(end)

	filtered := make([]*entity.TransactionWithCategory, 0, len(entries))
	for _, e := range entries {
		day := dateOf(e.Transaction.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// ComputeRunningBalance sorts the entries ascending by date (stable, ties keep
// input order) and folds from zero: income adds, expense subtracts. The
// intermediate balances depend on the ordering; the final balance is the sum
// and therefore order-independent.
func ComputeRunningBalance(entries []*entity.TransactionWithCategory) []BalanceEntry {
	sorted := make([]*entity.TransactionWithCategory, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateOf(sorted[i].Transaction.Date).Before(dateOf(sorted[j].Transaction.Date))
	})

	balance := decimal.Zero
	result := make([]BalanceEntry, len(sorted))
	for i, e := range sorted {
		if e.Transaction.Type == entity.TransactionTypeIncome {
			balance = balance.Add(e.Transaction.Amount)
		} else {
			balance = balance.Sub(e.Transaction.Amount)
		}
		result[i] = BalanceEntry{
			Transaction: e.Transaction,
			Category:    e.Category,
			Balance:     balance,
		}
	}
	return result
}

// AggregateTotals sums income and expense amounts and derives the net
// balance. The input is not mutated; an empty list yields all-zero totals.
func AggregateTotals(transactions []*entity.Transaction) Totals {
	totals := Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeIncome {
			totals.Income = totals.Income.Add(t.Amount)
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}
