// Package normalize prepares extracted text for pattern matching so that
// downstream extraction is insensitive to the source document's layout.
package normalize

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// headingSynonyms canonicalizes section headings some résumés spell out in
// long form. Replacements are exact substring matches, applied after the
// whitespace collapse so multi-word headings match regardless of line breaks.
var headingSynonyms = [][2]string{
	{"PROFESSIONAL EXPERIENCE", "EXPERIENCE"},
	{"EDUCATIONAL BACKGROUND", "EDUCATION"},
}

// Normalize collapses every run of whitespace into a single space,
// canonicalizes known heading synonyms, and trims the result. It is a pure
// function and idempotent: Normalize(Normalize(t)) == Normalize(t).
func Normalize(text string) string {
	text = reWhitespace.ReplaceAllString(text, " ")
	for _, s := range headingSynonyms {
		text = strings.ReplaceAll(text, s[0], s[1])
	}
	return strings.TrimSpace(text)
}
