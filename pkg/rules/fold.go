package rules

import "golang.org/x/text/cases"

// fold returns the Unicode case-folded form of s used for
// case-insensitive comparisons
func fold(s string) string {
	return cases.Fold().String(s)
}
