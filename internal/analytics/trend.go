package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"vypiska/internal/core"
)

// TrendWindowDays is the length of a category spending trend.
const TrendWindowDays = 90

// TrendPoint is one day of net category spending.
type TrendPoint struct {
	Date  time.Time
	Total decimal.Decimal
}

// CategoryTrend sums signed amounts per calendar day for one category
// over the TrendWindowDays days following start, both ends inclusive.
// Days without activity produce no point; points come back in date
// order.
func CategoryTrend(txs []core.Transaction, category string, start time.Time) []TrendPoint {
	sy, sm, sd := start.Date()
	first := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 0, TrendWindowDays)

	sums := make(map[time.Time]decimal.Decimal)
	for _, t := range txs {
		if !t.HasTimestamp() || t.Category != category {
			continue
		}
		y, m, d := t.Timestamp.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if day.Before(first) || day.After(last) {
			continue
		}
		sums[day] = sums[day].Add(t.Amount)
	}

	points := make([]TrendPoint, 0, len(sums))
	for day, total := range sums {
		points = append(points, TrendPoint{Date: day, Total: total})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
