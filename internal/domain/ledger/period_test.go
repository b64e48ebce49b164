package ledger

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	t.Run("accepts the three known periods", func(t *testing.T) {
		for _, raw := range []string{"daily", "weekly", "monthly"} {
			period, ok := ParsePeriod(raw)
			if !ok {
				t.Errorf("expected %q to parse", raw)
			}
			if string(period) != raw {
				t.Errorf("expected period %q, got %q", raw, period)
			}
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "yearly", "Daily", "week"} {
			if _, ok := ParsePeriod(raw); ok {
				t.Errorf("expected %q to be rejected", raw)
			}
		}
	})
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	t.Run("daily starts at the beginning of today", func(t *testing.T) {
		start := PeriodStart(now, PeriodDaily)
		want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Errorf("expected %s, got %s", want, start)
		}
	})

	t.Run("weekly rolls back seven days", func(t *testing.T) {
		start := PeriodStart(now, PeriodWeekly)
		want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Errorf("expected %s, got %s", want, start)
		}
	})

	t.Run("monthly rolls back one calendar month", func(t *testing.T) {
		start := PeriodStart(now, PeriodMonthly)
		want := time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Errorf("expected %s, got %s", want, start)
		}
	})

	t.Run("monthly across a short month follows AddDate normalization", func(t *testing.T) {
		marchEnd := time.Date(2024, 3, 30, 10, 0, 0, 0, time.UTC)
		start := PeriodStart(marchEnd, PeriodMonthly)
		// Feb 30 normalizes to Mar 1 in 2024.
		want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Errorf("expected %s, got %s", want, start)
		}
	})
}
