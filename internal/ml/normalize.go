package ml

import (
	"regexp"
	"strings"
)

var (
	// Everything outside letters, digits, underscore and whitespace
	// becomes a space. The Unicode classes keep accented and non-Latin
	// letters intact; a plain \w here would strip them.
	strippedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Normalize produces the canonical form fed to the classifier:
// lower-cased, special characters stripped to spaces, whitespace runs
// collapsed to a single space, trimmed. Stripping happens before the
// collapse so that the transformation is idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strippedChars.ReplaceAllString(text, " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
