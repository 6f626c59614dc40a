// Package analytics is the pure query engine: every function takes an
// already-normalized transaction sequence, builds its own aggregation
// state, and performs no I/O. Callers may invoke any of them
// concurrently without coordination.
package analytics

import (
	"regexp"
	"strings"

	"vypiska/internal/core"
)

// Matcher is a declarative text matcher: a compiled pattern plus a
// policy for whether it must cover the whole (trimmed) input or may hit
// any substring. Keeping the policy explicit lets detector
// implementations swap the pattern without touching call sites.
type Matcher struct {
	re   *regexp.Regexp
	full bool
}

// NewSubstringMatcher compiles a pattern that may match anywhere in the
// input.
func NewSubstringMatcher(pattern string) Matcher {
	return Matcher{re: regexp.MustCompile(pattern)}
}

// NewFullMatcher compiles a pattern that must cover the entire input
// after trimming surrounding whitespace.
func NewFullMatcher(pattern string) Matcher {
	return Matcher{re: regexp.MustCompile(`^(?:` + pattern + `)$`), full: true}
}

// Matches reports whether s satisfies the matcher's policy.
func (m Matcher) Matches(s string) bool {
	if m.full {
		s = strings.TrimSpace(s)
	}
	return m.re.MatchString(s)
}

// phoneNumber detects Russian mobile numbers such as "+7 921 11-22-33"
// anywhere in a description. The case-insensitive flag has no effect on
// digits; it is kept for symmetry with the other matchers.
var phoneNumber = NewSubstringMatcher(`(?i)\+7\s?\d{3}\s?\d{2}-\d{2}-\d{2}`)

// personName detects a person-shaped recipient: a capitalized name, one
// space, then either a capitalized initial with a period ("Валерий А.")
// or a second capitalized word ("Иван Иванович"). Anchored: the trimmed
// description must be nothing but the name.
var personName = NewFullMatcher(`[А-ЯЁ][а-яё]+ (?:[А-ЯЁ]\.|[А-ЯЁ][а-яё]+)`)

// PhoneNumbers returns the transactions whose description contains a
// mobile phone number, in original order.
func PhoneNumbers(txs []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, 0)
	for _, t := range txs {
		if phoneNumber.Matches(t.Description) {
			out = append(out, t)
		}
	}
	return out
}

// PersonalTransfers returns the transactions that are person-to-person
// transfers: the transfer category plus a person-shaped description.
func PersonalTransfers(txs []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, 0)
	for _, t := range txs {
		if t.Category == core.TransferCategory && personName.Matches(t.Description) {
			out = append(out, t)
		}
	}
	return out
}
