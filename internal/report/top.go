package report

import (
	"sort"
	"time"

	"vypiska/internal/core"
)

// topTransactionCount caps the largest-expenses list.
const topTransactionCount = 5

// dateLayout renders the date portion of a timestamp in output.
const dateLayout = "2006-01-02"

// TopTransactions returns at most five expenses ranked by absolute
// amount, descending. The sort is stable, so ties keep original order.
// Missing dates, categories and descriptions render the default label.
func TopTransactions(txs []core.Transaction) []TopTransaction {
	expenses := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.Abs().GreaterThan(expenses[j].Amount.Abs())
	})
	if len(expenses) > topTransactionCount {
		expenses = expenses[:topTransactionCount]
	}

	top := make([]TopTransaction, 0, len(expenses))
	for _, t := range expenses {
		top = append(top, TopTransaction{
			Date:        formatDate(t.Timestamp),
			Amount:      t.Amount.Abs(),
			Category:    t.CategoryLabel(),
			Description: t.DescriptionLabel(),
		})
	}
	return top
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return core.UnknownLabel
	}
	return ts.Format(dateLayout)
}
