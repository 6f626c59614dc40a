package analytics

import (
	"strings"

	"vypiska/internal/core"
)

// Search returns every transaction whose description or category
// contains query, case-insensitively, preserving input order. The empty
// query matches everything: it is a substring of the empty string too.
func Search(txs []core.Transaction, query string) []core.Transaction {
	q := strings.ToLower(query)
	out := make([]core.Transaction, 0)
	for _, t := range txs {
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}
