package report

import (
	"github.com/shopspring/decimal"

	"vypiska/internal/core"
)

// cashbackDivisor implements the fixed 1% cashback rate.
var cashbackDivisor = decimal.NewFromInt(100)

// CardStatistics groups expenses by card suffix and computes total
// spend plus 1% cashback per card. Incomes and transactions without a
// card suffix are skipped. Accumulation keeps full precision; only the
// cashback figure is rounded to 2 decimal places for display. Cards
// come back in first-seen order.
func CardStatistics(txs []core.Transaction) []CardStats {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range txs {
		if t.CardSuffix == "" || !t.IsExpense() {
			continue
		}
		if _, seen := totals[t.CardSuffix]; !seen {
			order = append(order, t.CardSuffix)
		}
		totals[t.CardSuffix] = totals[t.CardSuffix].Add(t.Amount.Abs())
	}

	stats := make([]CardStats, 0, len(order))
	for _, suffix := range order {
		total := totals[suffix]
		stats = append(stats, CardStats{
			LastDigits: suffix,
			TotalSpent: total,
			Cashback:   total.Div(cashbackDivisor).Round(2),
		})
	}
	return stats
}
