package rules

import (
	"regexp"
	"strings"
)

// reEducation matches a degree keyword followed, non-greedily, by anything
// ending in a 4-digit year and a closing parenthesis, e.g.
// "B.Sc. Computer Science, MIT (2015)".
var reEducation = regexp.MustCompile(
	`(?i)(B\.Sc\.|M\.Sc\.|B\.Tech|M\.Tech|Bachelor|Master).*?\d{4}\)`)

// ExtractEducation returns the trimmed full span of every degree match, in
// text order.
func ExtractEducation(text string) []string {
	matches := reEducation.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m))
	}
	return out
}
