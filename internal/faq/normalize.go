package faq

import (
	"strings"
	"unicode"
)

// Normalize folds raw user text into the canonical form FAQ keys are stored
// in: lowercase, with every rune that is neither a word character nor
// whitespace removed, and surrounding whitespace trimmed. Idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
