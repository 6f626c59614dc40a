package source

import (
	"strings"

	"vypiska/internal/core"
)

// rowsToRaw zips a header row with data rows. Header cells are trimmed,
// empty header cells are skipped, and trailing data cells without a
// header are dropped. Rows with no non-empty cell are ignored.
func rowsToRaw(header []string, rows [][]string) []core.RawRow {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.TrimSpace(h)
	}

	out := make([]core.RawRow, 0, len(rows))
	for _, cells := range rows {
		raw := make(core.RawRow, len(keys))
		empty := true
		for i, cell := range cells {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			raw[keys[i]] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		out = append(out, raw)
	}
	return out
}
