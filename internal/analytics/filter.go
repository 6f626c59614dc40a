package analytics

import (
	"time"

	"vypiska/internal/core"
)

// Window returns the transactions with from <= timestamp <= to, both
// bounds inclusive, preserving input order. Records without a timestamp
// are excluded.
func Window(txs []core.Transaction, from, to time.Time) []core.Transaction {
	out := make([]core.Transaction, 0)
	for _, t := range txs {
		if !t.HasTimestamp() {
			continue
		}
		if t.Timestamp.Before(from) || t.Timestamp.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// MonthWindow returns the transactions of target's calendar month up to
// and including target itself: the home-report window.
func MonthWindow(txs []core.Transaction, target time.Time) []core.Transaction {
	start := time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, target.Location())
	return Window(txs, start, target)
}

// OnDate returns the transactions that fall on the given calendar day.
func OnDate(txs []core.Transaction, day time.Time) []core.Transaction {
	y, m, d := day.Date()
	out := make([]core.Transaction, 0)
	for _, t := range txs {
		if !t.HasTimestamp() {
			continue
		}
		ty, tm, td := t.Timestamp.Date()
		if ty == y && tm == m && td == d {
			out = append(out, t)
		}
	}
	return out
}
