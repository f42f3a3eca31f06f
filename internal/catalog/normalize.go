package catalog

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes free text for alias matching: lowercase, fold
// "ё" to "е", drop everything outside [a-zа-я0-9 ], collapse whitespace.
// The function is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if r == 'ё' {
			r = 'е'
		}
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'а' && r <= 'я',
			r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
