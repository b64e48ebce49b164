package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// chartBucketLimit is the number of distinct dates shown on the dashboard
// chart.
const chartBucketLimit = 7

// ChartBucket holds per-date income and expense sums for charting.
type ChartBucket struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GroupByDateForChart groups transactions into per-calendar-date buckets of
// income/expense sums, sorted ascending by date, keeping only the most recent
// 7 distinct dates present in the data. Days without transactions produce no
// bucket, so these are not necessarily the last 7 calendar days.
func GroupByDateForChart(transactions []*entity.Transaction) []ChartBucket {
	grouped := make(map[time.Time]*ChartBucket)
	for _, t := range transactions {
		day := dateOf(t.Date)
		bucket, ok := grouped[day]
		if !ok {
			bucket = &ChartBucket{
				Date:    day,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			grouped[day] = bucket
		}
		if t.Type == entity.TransactionTypeIncome {
			bucket.Income = bucket.Income.Add(t.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(t.Amount)
		}
	}

	buckets := make([]ChartBucket, 0, len(grouped))
	for _, b := range grouped {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})

	if len(buckets) > chartBucketLimit {
		buckets = buckets[len(buckets)-chartBucketLimit:]
	}
	return buckets
}
