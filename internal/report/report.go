// Package report composes the "home page" payload: a greeting, per-card
// cashback statistics, the largest expenses of the period, and reference
// market data reshaped for display. Everything is computed from data
// already in memory; the market data is supplied by the caller.
package report

import (
	"github.com/shopspring/decimal"
)

// Report is the composite home-page payload.
type Report struct {
	Greeting        string           `json:"greeting"`
	Cards           []CardStats      `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	CurrencyRates   []CurrencyRate   `json:"currency_rates"`
	StockPrices     []StockPrice     `json:"stock_prices"`
}

// CardStats aggregates spending for one card.
type CardStats struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   decimal.Decimal `json:"cashback"`
}

// TopTransaction is one of the period's largest expenses, rendered for
// display: date portion only, absolute amount, default labels for
// missing text.
type TopTransaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// CurrencyRate is one currency quote in uniform name/value form.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is one index constituent quote in uniform name/value form.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}
