package rules

import (
	"regexp"
	"strings"

	"github.com/parsecv/parsecv/internal/entity"
)

// reExperience matches a company/role/date-range triple introduced by the
// word "Experience" or "Work". The year range uses an en dash (as rendered by
// most résumé templates) and allows "present" as the open end. Non-greedy
// quantifiers and the loose anchoring are deliberate and load-bearing.
var reExperience = regexp.MustCompile(
	`(?i)(?:Experience|Work).*?([A-Za-z0-9 ]+)\s*[-,]\s*(.*?)(\d{4}–\d{4}|\d{4}–present)`)

// ExtractExperience finds every company/role/years triple in the text, in
// the order the matches occur. Matching is global: several entries under one
// heading all surface.
func ExtractExperience(text string) []entity.ExperienceEntry {
	matches := reExperience.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	entries := make([]entity.ExperienceEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, entity.ExperienceEntry{
			Company: strings.TrimSpace(m[1]),
			Role:    strings.TrimSpace(m[2]),
			Years:   m[3],
		})
	}
	return entries
}
