package report

import (
	"time"

	"vypiska/internal/analytics"
	"vypiska/internal/core"
)

// Compose builds the home report for a target date-time. The
// transaction window runs from the first instant of the target's month
// through the target itself, inclusive. Empty inputs compose an empty
// but well-formed report.
func Compose(txs []core.Transaction, target time.Time, rates map[string]float64, stocks []map[string]float64) Report {
	window := analytics.MonthWindow(txs, target)
	return Report{
		Greeting:        Greeting(target),
		Cards:           CardStatistics(window),
		TopTransactions: TopTransactions(window),
		CurrencyRates:   FormatCurrencyRates(rates),
		StockPrices:     FormatStockPrices(stocks),
	}
}
