package services

import (
	"time"

	"github.com/shopspring/decimal"

	"vypiska/internal/core"
)

// internalErrorBody is the uniform failure payload. Callers cannot
// distinguish failure causes from it; causes go to the log only.
const internalErrorBody = `{"error": "Internal server error"}`

func errorPayload() []byte {
	return []byte(internalErrorBody)
}

// TransactionPayload is the wire form of one transaction. Date-times
// are rendered as ISO-8601 strings; a record without a parsed timestamp
// omits the field.
type TransactionPayload struct {
	Date        string          `json:"date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Card        string          `json:"card,omitempty"`
}

func newTransactionPayload(t core.Transaction) TransactionPayload {
	p := TransactionPayload{
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Card:        t.CardSuffix,
	}
	if t.HasTimestamp() {
		p.Date = t.Timestamp.Format(time.RFC3339)
	}
	return p
}

func newTransactionPayloads(txs []core.Transaction) []TransactionPayload {
	out := make([]TransactionPayload, 0, len(txs))
	for _, t := range txs {
		out = append(out, newTransactionPayload(t))
	}
	return out
}

// resultsPayload wraps matcher and search output.
type resultsPayload struct {
	Results []TransactionPayload `json:"results"`
}

// categoryPayload is one ranked category in the top-categories output.
type categoryPayload struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type topCategoriesPayload struct {
	TopCategories []categoryPayload `json:"top_categories"`
}

type piggyBankPayload struct {
	TotalInvestment decimal.Decimal `json:"total_investment"`
}

// trendPointPayload is one day of a category spending trend.
type trendPointPayload struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type trendPayload struct {
	Category      string              `json:"category"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	SpendingTrend []trendPointPayload `json:"spending_trend"`
}

// weekdayNames maps Monday-first ordinals to display names. The locale
// of the names is a presentation concern; aggregation itself is keyed
// by ordinal.
var weekdayNames = [...]string{
	core.Monday:    "Понедельник",
	core.Tuesday:   "Вторник",
	core.Wednesday: "Среда",
	core.Thursday:  "Четверг",
	core.Friday:    "Пятница",
	core.Saturday:  "Суббота",
	core.Sunday:    "Воскресенье",
}
