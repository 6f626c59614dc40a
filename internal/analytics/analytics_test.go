package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"vypiska/internal/core"
)

// tx builds a transaction for tests. date may be empty for records
// without a parsed timestamp.
func tx(t *testing.T, date, amount, category, description string) core.Transaction {
	t.Helper()
	var ts time.Time
	if date != "" {
		var err error
		ts, err = time.Parse(core.DateTimeLayout, date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", date, err)
		}
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad test amount %q: %v", amount, err)
	}
	return core.Transaction{Timestamp: ts, Amount: amt, Category: category, Description: description}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
