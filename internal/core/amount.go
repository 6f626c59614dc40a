// Package core holds the canonical transaction record and the fallible
// normalization step that produces it from raw statement rows.
//
// This file contains cell-level parsers for monetary amounts and card
// numbers as they appear in bank exports.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw amount cell to a signed decimal.
//
// It accepts both dot (-123.45) and comma (-123,45) decimal separators
// and tolerates space thousand separators as produced by localized
// exports ("1 234,56"). The returned decimal keeps the cell's precision
// exactly; no float conversion happens on the way.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// ParseCardSuffix extracts the trailing 4 characters of a card value.
//
// Blank cells, the "*" placeholder, and NaN-like values yield the empty
// string ("no card"). Numeric cells that surface as floats keep only
// their integral digits before the suffix is taken.
func ParseCardSuffix(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == "*" || strings.EqualFold(s, "nan") {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ""
		}
		s = strconv.FormatInt(int64(f), 10)
	}
	rs := []rune(s)
	if len(rs) > 4 {
		rs = rs[len(rs)-4:]
	}
	return string(rs)
}
