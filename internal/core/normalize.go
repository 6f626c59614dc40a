package core

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Reason identifies why a row failed normalization.
type Reason string

const (
	MissingRequiredColumn Reason = "missing_required_column"
	UnparsableDate        Reason = "unparsable_date"
	UnparsableAmount      Reason = "unparsable_amount"
)

// NormalizeError reports a per-row normalization failure. The batch
// forms never abort on it; callers that require the failed field skip
// the row, everything else keeps working with what was parsed.
type NormalizeError struct {
	Reason Reason
	Column string
	Err    error
}

func (e *NormalizeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Reason, e.Column, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Reason, e.Column)
}

func (e *NormalizeError) Unwrap() error {
	return e.Err
}

// requiredColumns must all be present for a full normalization.
var requiredColumns = []string{ColumnDate, ColumnAmount, ColumnCategory, ColumnDescription}

// Normalize performs a full normalization of one raw row: every required
// column present, date and amount parsed. The first failure is returned
// as a *NormalizeError.
func Normalize(row RawRow) (Transaction, error) {
	for _, col := range requiredColumns {
		if _, ok := row[col]; !ok {
			return Transaction{}, &NormalizeError{Reason: MissingRequiredColumn, Column: col}
		}
	}
	ts, err := time.Parse(DateTimeLayout, strings.TrimSpace(row[ColumnDate]))
	if err != nil {
		return Transaction{}, &NormalizeError{Reason: UnparsableDate, Column: ColumnDate, Err: err}
	}
	amount, err := ParseAmount(row[ColumnAmount])
	if err != nil {
		return Transaction{}, &NormalizeError{Reason: UnparsableAmount, Column: ColumnAmount, Err: err}
	}
	return Transaction{
		Timestamp:   ts,
		Amount:      amount,
		Category:    strings.TrimSpace(row[ColumnCategory]),
		Description: strings.TrimSpace(row[ColumnDescription]),
		CardSuffix:  ParseCardSuffix(row[ColumnCard]),
	}, nil
}

// NormalizeLenient normalizes what it can and reports the rest. A bad or
// missing date leaves the timestamp zero, a bad or missing amount leaves
// it zero; the row itself is always kept so that queries which do not
// need the failed field still see it.
func NormalizeLenient(row RawRow) (Transaction, []error) {
	var issues []error
	tx := Transaction{
		Category:    strings.TrimSpace(row[ColumnCategory]),
		Description: strings.TrimSpace(row[ColumnDescription]),
		CardSuffix:  ParseCardSuffix(row[ColumnCard]),
	}
	if raw, ok := row[ColumnDate]; !ok {
		issues = append(issues, &NormalizeError{Reason: MissingRequiredColumn, Column: ColumnDate})
	} else if ts, err := time.Parse(DateTimeLayout, strings.TrimSpace(raw)); err != nil {
		issues = append(issues, &NormalizeError{Reason: UnparsableDate, Column: ColumnDate, Err: err})
	} else {
		tx.Timestamp = ts
	}
	if raw, ok := row[ColumnAmount]; !ok {
		issues = append(issues, &NormalizeError{Reason: MissingRequiredColumn, Column: ColumnAmount})
	} else if amount, err := ParseAmount(raw); err != nil {
		issues = append(issues, &NormalizeError{Reason: UnparsableAmount, Column: ColumnAmount, Err: err})
	} else {
		tx.Amount = amount
	}
	return tx, issues
}

// NormalizeAll converts a row sequence into transactions with the
// lenient policy, logging every issue. It never fails: an empty or nil
// input yields an empty slice.
func NormalizeAll(rows []RawRow, logger *slog.Logger) []Transaction {
	if logger == nil {
		logger = slog.Default()
	}
	txs := make([]Transaction, 0, len(rows))
	for i, row := range rows {
		tx, issues := NormalizeLenient(row)
		for _, issue := range issues {
			logger.Warn("row normalization issue", "row", i, "error", issue)
		}
		txs = append(txs, tx)
	}
	return txs
}
