package ledger

import (
	"time"
)

// Period identifies a rolling window relative to the current instant, not a
// calendar-aligned bucket: "weekly" means the last 7 days, not this ISO week.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates and converts a raw period string.
func ParsePeriod(raw string) (Period, bool) {
	switch Period(raw) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(raw), true
	default:
		return "", false
	}
}

// PeriodStart returns the start boundary of the rolling window ending at now:
// daily is the start of the current calendar day, weekly is now minus 7 days,
// monthly is now minus one calendar month. The boundary is truncated to a
// calendar date and the window's upper end is unbounded.
func PeriodStart(now time.Time, period Period) time.Time {
	switch period {
	case PeriodWeekly:
		return dateOf(now.AddDate(0, 0, -7))
	case PeriodMonthly:
		return dateOf(now.AddDate(0, -1, 0))
	default:
		return dateOf(now)
	}
}
