package domain

import (
	"regexp"
	"strings"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9]+`)
	plainWord = regexp.MustCompile(`^\w+$`)
)

// NormalizeWord prepares a candidate word for use as a map key:
// lowercased with every non-alphanumeric character stripped.
// Returns "" if nothing survives.
func NormalizeWord(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	return nonAlnum.ReplaceAllString(word, "")
}

// IsPlainWord reports whether s is a single bare token without spaces or
// punctuation. Multi-word phrases and annotated identifiers fail this test.
func IsPlainWord(s string) bool {
	return plainWord.MatchString(s)
}
