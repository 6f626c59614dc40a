package report

import "sort"

// FormatCurrencyRates reshapes a code→rate mapping into the uniform
// list form, sorted by currency code for deterministic output.
func FormatCurrencyRates(rates map[string]float64) []CurrencyRate {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		out = append(out, CurrencyRate{Currency: code, Rate: rates[code]})
	}
	return out
}

// FormatStockPrices reshapes index snapshots into the uniform list form.
// Only the first snapshot is used; symbols are sorted for deterministic
// output. No snapshots yields an empty list.
func FormatStockPrices(snapshots []map[string]float64) []StockPrice {
	out := make([]StockPrice, 0)
	if len(snapshots) == 0 {
		return out
	}
	first := snapshots[0]
	symbols := make([]string, 0, len(first))
	for sym := range first {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	for _, sym := range symbols {
		out = append(out, StockPrice{Stock: sym, Price: first[sym]})
	}
	return out
}
