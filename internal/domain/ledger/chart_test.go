package ledger

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

func TestGroupByDateForChart(t *testing.T) {
	t.Run("groups same-day transactions into one bucket", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(entity.TransactionTypeIncome, "100", "2024-01-01").Transaction,
			txn(entity.TransactionTypeIncome, "50", "2024-01-01").Transaction,
			txn(entity.TransactionTypeExpense, "30", "2024-01-01").Transaction,
		}

		buckets := GroupByDateForChart(transactions)

		if len(buckets) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(buckets))
		}
		if !buckets[0].Income.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected income 150, got %s", buckets[0].Income)
		}
		if !buckets[0].Expense.Equal(decimal.RequireFromString("30")) {
			t.Errorf("expected expense 30, got %s", buckets[0].Expense)
		}
	})

	t.Run("keeps only the most recent seven distinct dates", func(t *testing.T) {
		var transactions []*entity.Transaction
		for day := 1; day <= 10; day++ {
			transactions = append(transactions,
				txn(entity.TransactionTypeIncome, "10", fmt.Sprintf("2024-01-%02d", day)).Transaction)
		}

		buckets := GroupByDateForChart(transactions)

		if len(buckets) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(buckets))
		}
		if !buckets[0].Date.Equal(date("2024-01-04")) {
			t.Errorf("expected oldest kept bucket 2024-01-04, got %s", buckets[0].Date)
		}
		if !buckets[6].Date.Equal(date("2024-01-10")) {
			t.Errorf("expected newest bucket 2024-01-10, got %s", buckets[6].Date)
		}
	})

	t.Run("dates without transactions produce no bucket", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(entity.TransactionTypeIncome, "10", "2024-01-01").Transaction,
			txn(entity.TransactionTypeIncome, "20", "2024-01-05").Transaction,
		}

		buckets := GroupByDateForChart(transactions)

		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
	})

	t.Run("buckets are sorted ascending by date", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(entity.TransactionTypeIncome, "10", "2024-01-05").Transaction,
			txn(entity.TransactionTypeIncome, "20", "2024-01-01").Transaction,
			txn(entity.TransactionTypeIncome, "30", "2024-01-03").Transaction,
		}

		buckets := GroupByDateForChart(transactions)

		for i := 1; i < len(buckets); i++ {
			if !buckets[i-1].Date.Before(buckets[i].Date) {
				t.Errorf("buckets out of order at index %d", i)
			}
		}
	})

	t.Run("empty input yields no buckets", func(t *testing.T) {
		if buckets := GroupByDateForChart(nil); len(buckets) != 0 {
			t.Errorf("expected no buckets, got %d", len(buckets))
		}
	})
}
