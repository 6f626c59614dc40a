package analytics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"vypiska/internal/core"
)

// ErrInvalidStep rejects non-positive rounding steps.
var ErrInvalidStep = errors.New("rounding step must be positive")

var one = decimal.NewFromInt(1)

// RoundUpDifference returns the gap between an expense's absolute value
// and the next multiple of step. The rounding is strictly upward: an
// amount already on a multiple still pays a full step, so the result is
// always in (0, step].
func RoundUpDifference(amount decimal.Decimal, step int64) decimal.Decimal {
	abs := amount.Abs()
	st := decimal.NewFromInt(step)
	next := abs.Div(st).Floor().Add(one).Mul(st)
	return next.Sub(abs)
}

// RoundUpTotal sums round-up differences over the expenses of one
// calendar month. No matching expenses means a zero total.
func RoundUpTotal(txs []core.Transaction, year int, month time.Month, step int64) (decimal.Decimal, error) {
	if step <= 0 {
		return decimal.Zero, ErrInvalidStep
	}
	total := decimal.Zero
	for _, t := range txs {
		if !t.InMonth(year, month) || !t.IsExpense() {
			continue
		}
		total = total.Add(RoundUpDifference(t.Amount, step))
	}
	return total, nil
}
