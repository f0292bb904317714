package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a title for equality comparison. Accented
// characters lose their diacritics ("León" -> "leon"), hyphens become
// spaces ("Spider-Man" -> "spider man"), punctuation is dropped
// ("L.A. Confidential" -> "la confidential"), and whitespace is collapsed.
// The result is lower-case and trimmed. Normalize is pure and idempotent.
func Normalize(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case r == '-':
			b.WriteByte(' ')
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), " "))
}

// TitlesMatch reports whether two titles are equal after normalization.
// Centralized so every comparison in the service uses identical logic.
func TitlesMatch(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
