package grading

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes text before any fuzzy comparison: lower-case, strip
// punctuation, collapse whitespace runs, trim. Idempotent, so surface
// punctuation and casing never affect scoring.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = nonWordPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
