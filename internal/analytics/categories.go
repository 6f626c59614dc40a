package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"vypiska/internal/core"
)

// topCategoryCount caps the category ranking length.
const topCategoryCount = 3

// CategoryTotal is one ranked category with its absolute spend.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TopCategories ranks spending for one calendar month: expenses only,
// absolute sums per category, descending, capped at three entries.
// Ties keep first-seen category order (the sort is stable). Records
// without a timestamp never participate. Empty input yields an empty
// slice, not an error.
func TopCategories(txs []core.Transaction, year int, month time.Month) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range txs {
		if !t.InMonth(year, month) || !t.IsExpense() {
			continue
		}
		cat := t.CategoryLabel()
		if _, seen := sums[cat]; !seen {
			order = append(order, cat)
		}
		sums[cat] = sums[cat].Add(t.Amount.Abs())
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		totals = append(totals, CategoryTotal{Category: cat, Total: sums[cat]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	if len(totals) > topCategoryCount {
		totals = totals[:topCategoryCount]
	}
	return totals
}
