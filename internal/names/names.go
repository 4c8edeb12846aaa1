// Package names normalizes creature, move and egg group names.
//
// Catalog names are compared case-insensitively everywhere. SQLite's NOCASE
// collation only folds ASCII, so callers normalize input to NFC before it
// reaches a query and use Equal for comparisons made in Go.
package names

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns name in Unicode NFC form.
// The name is otherwise left untouched: no trimming, no case change.
func Normalize(name string) string {
	return norm.NFC.String(name)
}

// Fold returns the case-folded NFC form of name, suitable as a map key.
func Fold(name string) string {
	// cases.Caser is stateful, so a fresh one is built per call.
	return cases.Fold().String(Normalize(name))
}

// Equal reports whether a and b name the same thing, ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
