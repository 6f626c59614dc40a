package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"vypiska/internal/core"
)

// SpendingByWeekday nets signed amounts per Monday-first weekday
// ordinal. Incomes and expenses offset each other inside a bucket.
// until, when non-zero, is an inclusive upper bound on the transaction's
// calendar date (time of day is ignored). Records without a timestamp
// are excluded. No matches yields an empty map.
func SpendingByWeekday(txs []core.Transaction, until time.Time) map[core.Weekday]decimal.Decimal {
	var cutoff time.Time
	if !until.IsZero() {
		y, m, d := until.Date()
		cutoff = time.Date(y, m, d+1, 0, 0, 0, 0, until.Location())
	}

	buckets := make(map[core.Weekday]decimal.Decimal)
	for _, t := range txs {
		if !t.HasTimestamp() {
			continue
		}
		if !cutoff.IsZero() && !t.Timestamp.Before(cutoff) {
			continue
		}
		wd := core.WeekdayOf(t.Timestamp)
		buckets[wd] = buckets[wd].Add(t.Amount)
	}
	return buckets
}
