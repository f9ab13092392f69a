// Package merge reconciles the model-based and rule-based candidate records
// into the single record returned to callers.
package merge

import (
	"sort"

	"github.com/parsecv/parsecv/internal/entity"
)

// ContactPolicy selects how model contact fields (name, email, phone)
// override rule-based ones.
type ContactPolicy string

const (
	// KeyPresence reproduces the shallow-overwrite semantics of the original
	// service: a key the model emitted wins even when its value is an empty
	// string. Last value wins on key presence, not on non-emptiness.
	KeyPresence ContactPolicy = "key-presence"
	// NonEmptyWins only lets the model override when it produced a non-empty
	// value.
	NonEmptyWins ContactPolicy = "non-empty-wins"
)

// ParsePolicy maps a config string to a policy, defaulting to KeyPresence.
func ParsePolicy(s string) ContactPolicy {
	if s == string(NonEmptyWins) {
		return NonEmptyWins
	}
	return KeyPresence
}

// Merger applies the field-by-field precedence and fallback policy. It is
// stateless and never fails; missing fields become sentinel defaults.
type Merger struct {
	policy ContactPolicy
}

func NewMerger(policy ContactPolicy) *Merger {
	if policy == "" {
		policy = KeyPresence
	}
	return &Merger{policy: policy}
}

// Merge builds the final record:
//   - name/email/phone: rule result is the baseline, model overrides per the
//     contact policy;
//   - skills: set union of both sides, deduplicated and sorted;
//   - experience/education: all-or-nothing — the model list verbatim when
//     non-empty, else the rule list verbatim.
func (m *Merger) Merge(model, rule entity.CandidateRecord) entity.FinalRecord {
	final := entity.FinalRecord{
		Name:  m.contact(model.Name, rule.Name, entity.UnknownName),
		Email: m.contact(model.Email, rule.Email, entity.NotFound),
		Phone: m.contact(model.Phone, rule.Phone, entity.NotFound),
	}

	final.Skills = unionSkills(model.Skills, rule.Skills)
	if len(final.Skills) == 0 {
		final.Skills = []string{entity.NotFound}
	}

	final.Experience = model.Experience
	if len(final.Experience) == 0 {
		final.Experience = rule.Experience
	}
	if final.Experience == nil {
		final.Experience = []entity.ExperienceEntry{}
	}

	final.Education = model.Education
	if len(final.Education) == 0 {
		final.Education = rule.Education
	}
	if final.Education == nil {
		final.Education = []string{}
	}

	return final
}

func (m *Merger) contact(model, rule *string, sentinel string) string {
	switch {
	case model != nil && (m.policy == KeyPresence || *model != ""):
		return *model
	case rule != nil:
		return *rule
	default:
		return sentinel
	}
}

// unionSkills returns the deduplicated union, sorted so the final record is
// deterministic regardless of which pass found a skill first.
func unionSkills(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
