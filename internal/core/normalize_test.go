package core

import (
	"errors"
	"testing"
	"time"
)

func fullRow() RawRow {
	return RawRow{
		ColumnDate:        "12.05.2021 13:57:38",
		ColumnStatus:      "OK",
		ColumnAmount:      "-7900",
		ColumnCategory:    "Фастфуд",
		ColumnDescription: "Kofe Lesnaya 24",
		ColumnCard:        "*7197",
	}
}

func TestNormalize(t *testing.T) {
	tx, err := Normalize(fullRow())
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := time.Date(2021, 5, 12, 13, 57, 38, 0, time.UTC)
	if !tx.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", tx.Timestamp, want)
	}
	if tx.Amount.String() != "-7900" {
		t.Errorf("Amount = %s, want -7900", tx.Amount)
	}
	if tx.Category != "Фастфуд" || tx.Description != "Kofe Lesnaya 24" {
		t.Errorf("unexpected text fields: %q %q", tx.Category, tx.Description)
	}
	if tx.CardSuffix != "7197" {
		t.Errorf("CardSuffix = %q, want 7197", tx.CardSuffix)
	}
	if !tx.IsExpense() {
		t.Error("IsExpense() = false for negative amount")
	}
}

func TestNormalize_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(RawRow)
		reason Reason
	}{
		{
			name:   "missing date column",
			mutate: func(r RawRow) { delete(r, ColumnDate) },
			reason: MissingRequiredColumn,
		},
		{
			name:   "missing amount column",
			mutate: func(r RawRow) { delete(r, ColumnAmount) },
			reason: MissingRequiredColumn,
		},
		{
			name:   "wrong date layout",
			mutate: func(r RawRow) { r[ColumnDate] = "2021-05-12 13:57:38" },
			reason: UnparsableDate,
		},
		{
			name:   "empty date",
			mutate: func(r RawRow) { r[ColumnDate] = "" },
			reason: UnparsableDate,
		},
		{
			name:   "non-numeric amount",
			mutate: func(r RawRow) { r[ColumnAmount] = "abc" },
			reason: UnparsableAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := fullRow()
			tt.mutate(row)
			_, err := Normalize(row)
			var nerr *NormalizeError
			if !errors.As(err, &nerr) {
				t.Fatalf("Normalize() error = %v, want *NormalizeError", err)
			}
			if nerr.Reason != tt.reason {
				t.Errorf("Reason = %s, want %s", nerr.Reason, tt.reason)
			}
		})
	}
}

func TestNormalizeLenient_KeepsRowWithoutDate(t *testing.T) {
	row := fullRow()
	row[ColumnDate] = "not a date"
	tx, issues := NormalizeLenient(row)
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want exactly one", issues)
	}
	if tx.HasTimestamp() {
		t.Error("HasTimestamp() = true for unparsable date")
	}
	if tx.Description != "Kofe Lesnaya 24" {
		t.Errorf("Description lost: %q", tx.Description)
	}
	if tx.Amount.String() != "-7900" {
		t.Errorf("Amount lost: %s", tx.Amount)
	}
}

func TestNormalizeAll(t *testing.T) {
	rows := []RawRow{
		fullRow(),
		{ColumnDescription: "+7 921 11-22-33"}, // searchable, nothing else
	}
	txs := NormalizeAll(rows, nil)
	if len(txs) != 2 {
		t.Fatalf("len = %d, want 2 (lenient batch keeps every row)", len(txs))
	}
	if txs[1].HasTimestamp() || !txs[1].Amount.IsZero() {
		t.Error("second row should have zero timestamp and amount")
	}
	if txs[1].Description != "+7 921 11-22-33" {
		t.Errorf("Description = %q", txs[1].Description)
	}

	if got := NormalizeAll(nil, nil); len(got) != 0 {
		t.Errorf("NormalizeAll(nil) = %v, want empty", got)
	}
}

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		want Weekday
	}{
		{"12.05.2021 13:57:38", Wednesday},
		{"17.05.2021 20:00:00", Monday},
		{"16.05.2021 18:22:05", Sunday},
	}
	for _, tc := range cases {
		ts, err := time.Parse(DateTimeLayout, tc.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := WeekdayOf(ts); got != tc.want {
			t.Errorf("WeekdayOf(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestTransactionLabels(t *testing.T) {
	tx := Transaction{}
	if tx.CategoryLabel() != UnknownLabel || tx.DescriptionLabel() != UnknownLabel {
		t.Error("empty fields should render the unknown label")
	}
	tx = Transaction{Category: "Переводы", Description: "Валерий А."}
	if tx.CategoryLabel() != "Переводы" || tx.DescriptionLabel() != "Валерий А." {
		t.Error("present fields should render verbatim")
	}
}
