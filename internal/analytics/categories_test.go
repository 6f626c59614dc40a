package analytics

import (
	"testing"
	"time"

	"vypiska/internal/core"
)

func TestTopCategories(t *testing.T) {
	txs := []core.Transaction{
		tx(t, "01.09.2023 10:00:00", "-100", "Фастфуд", ""),
		tx(t, "02.09.2023 10:00:00", "-200", "Супермаркеты", ""),
		tx(t, "03.09.2023 10:00:00", "-150", "Транспорт", ""),
		tx(t, "04.09.2023 10:00:00", "-50", "Аптеки", ""), // 4th place, cut
		tx(t, "05.09.2023 10:00:00", "-60", "Фастфуд", ""),
		tx(t, "06.09.2023 10:00:00", "500", "Зарплата", ""),  // income, ignored
		tx(t, "01.12.2023 10:00:00", "-999", "Транспорт", ""), // other month
	}

	got := TopCategories(txs, 2023, time.September)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []struct {
		category string
		total    string
	}{
		{"Супермаркеты", "200"},
		{"Фастфуд", "160"},
		{"Транспорт", "150"},
	}
	for i, w := range want {
		if got[i].Category != w.category || got[i].Total.String() != w.total {
			t.Errorf("rank %d = %s %s, want %s %s", i, got[i].Category, got[i].Total, w.category, w.total)
		}
	}
}

func TestTopCategories_TieKeepsFirstSeenOrder(t *testing.T) {
	txs := []core.Transaction{
		tx(t, "01.09.2023 10:00:00", "-100", "Б", ""),
		tx(t, "02.09.2023 10:00:00", "-100", "А", ""),
	}
	got := TopCategories(txs, 2023, time.September)
	if len(got) != 2 || got[0].Category != "Б" || got[1].Category != "А" {
		t.Fatalf("tie order = %v, want first-seen [Б А]", got)
	}
}

func TestTopCategories_Edges(t *testing.T) {
	if got := TopCategories(nil, 2023, time.September); len(got) != 0 {
		t.Errorf("empty input: got %v, want empty", got)
	}

	// no timestamp: excluded from a date-dependent query
	txs := []core.Transaction{tx(t, "", "-100", "Фастфуд", "")}
	if got := TopCategories(txs, 2023, time.September); len(got) != 0 {
		t.Errorf("timestampless rows must not rank: %v", got)
	}

	// missing category ranks under the unknown label
	txs = []core.Transaction{tx(t, "01.09.2023 10:00:00", "-100", "", "")}
	got := TopCategories(txs, 2023, time.September)
	if len(got) != 1 || got[0].Category != core.UnknownLabel {
		t.Errorf("got %v, want one entry under %q", got, core.UnknownLabel)
	}
}

func TestTopCategories_SumsDescendingAndNonNegative(t *testing.T) {
	txs := []core.Transaction{
		tx(t, "01.09.2023 10:00:00", "-1.01", "А", ""),
		tx(t, "02.09.2023 10:00:00", "-300", "Б", ""),
		tx(t, "03.09.2023 10:00:00", "-20.5", "В", ""),
		tx(t, "04.09.2023 10:00:00", "-7", "Г", ""),
	}
	got := TopCategories(txs, 2023, time.September)
	if len(got) != 3 {
		t.Fatalf("len = %d, want at most 3", len(got))
	}
	for i, ct := range got {
		if ct.Total.IsNegative() {
			t.Errorf("sum %d negative: %s", i, ct.Total)
		}
		if i > 0 && ct.Total.GreaterThan(got[i-1].Total) {
			t.Errorf("sums not descending at %d: %s > %s", i, ct.Total, got[i-1].Total)
		}
	}
}
