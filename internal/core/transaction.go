package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column labels of the statement export. Sources must deliver these
// labels verbatim for normalization to succeed.
const (
	ColumnDate        = "Дата операции"
	ColumnStatus      = "Статус"
	ColumnAmount      = "Сумма операции"
	ColumnCategory    = "Категория"
	ColumnDescription = "Описание"
	ColumnCard        = "Номер карты"
)

const (
	// DateTimeLayout is the only accepted layout for operation dates.
	DateTimeLayout = "02.01.2006 15:04:05"

	// TransferCategory marks person-to-person transfers in the export.
	TransferCategory = "Переводы"

	// UnknownLabel substitutes missing categories and descriptions in
	// rendered output. Search and matching see the raw empty value.
	UnknownLabel = "Неизвестно"
)

// RawRow is one statement row as delivered by a source backend, keyed by
// the export column labels. Values are raw cell text.
type RawRow map[string]string

// Transaction is one normalized statement record. The sign convention is
// load-bearing: negative amounts are expenses, non-negative amounts are
// inflows. A Transaction is never mutated after normalization.
type Transaction struct {
	// Timestamp is the zero value when the source date was absent or
	// unparsable. Such records stay usable for text and pattern search
	// but are excluded from date-dependent queries.
	Timestamp time.Time

	Amount      decimal.Decimal
	Category    string
	Description string

	// CardSuffix holds the last 4 characters of the card value, or the
	// empty string when the source had no usable card number.
	CardSuffix string
}

// IsExpense reports whether the transaction is a spend.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// HasTimestamp reports whether the operation date was parsed.
func (t Transaction) HasTimestamp() bool {
	return !t.Timestamp.IsZero()
}

// InMonth reports whether the transaction falls in the given year and
// month. Records without a timestamp never match.
func (t Transaction) InMonth(year int, month time.Month) bool {
	return t.HasTimestamp() && t.Timestamp.Year() == year && t.Timestamp.Month() == month
}

// CategoryLabel returns the category, or UnknownLabel when absent.
func (t Transaction) CategoryLabel() string {
	if t.Category == "" {
		return UnknownLabel
	}
	return t.Category
}

// DescriptionLabel returns the description, or UnknownLabel when absent.
func (t Transaction) DescriptionLabel() string {
	if t.Description == "" {
		return UnknownLabel
	}
	return t.Description
}

// Weekday is a Monday-first day-of-week ordinal. Display names are a
// presentation concern and live at the payload boundary.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf maps a timestamp to the Monday-first ordinal.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}
