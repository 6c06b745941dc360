// Package phone holds the digit-only phone normalization used everywhere a
// phone number is stored, compared, or looked up.
package phone

import "strings"

// Normalize strips every non-digit character. Two numbers are the same
// identity only if their digit sequences match exactly; no country-code
// normalization is applied, so "+254712345678" and "0712345678" remain
// distinct handles even when they reach the same telephone.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
