package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsecv/parsecv/internal/entity"
)

func TestMerge_AllSentinelsWhenBothEmpty(t *testing.T) {
	m := NewMerger(KeyPresence)
	final := m.Merge(entity.CandidateRecord{}, entity.CandidateRecord{})

	assert.Equal(t, entity.UnknownName, final.Name)
	assert.Equal(t, entity.NotFound, final.Email)
	assert.Equal(t, entity.NotFound, final.Phone)
	assert.Equal(t, []string{entity.NotFound}, final.Skills)
	assert.NotNil(t, final.Experience)
	assert.Empty(t, final.Experience)
	assert.NotNil(t, final.Education)
	assert.Empty(t, final.Education)
}

func TestMerge_ContactPrecedence_KeyPresence(t *testing.T) {
	m := NewMerger(KeyPresence)

	t.Run("model key absent keeps rule value", func(t *testing.T) {
		final := m.Merge(
			entity.CandidateRecord{},
			entity.CandidateRecord{Name: entity.Str("John Smith")},
		)
		assert.Equal(t, "John Smith", final.Name)
	})

	t.Run("model non-empty value overrides", func(t *testing.T) {
		final := m.Merge(
			entity.CandidateRecord{Name: entity.Str("Jonathan Smith")},
			entity.CandidateRecord{Name: entity.Str("John Smith")},
		)
		assert.Equal(t, "Jonathan Smith", final.Name)
	})

	t.Run("model explicit empty string overrides", func(t *testing.T) {
		// Last-value-wins on key presence: this preserves the source's
		// shallow-merge behavior even though it discards a found name.
		final := m.Merge(
			entity.CandidateRecord{Name: entity.Str("")},
			entity.CandidateRecord{Name: entity.Str("John Smith")},
		)
		assert.Equal(t, "", final.Name)
	})
}

func TestMerge_ContactPrecedence_NonEmptyWins(t *testing.T) {
	m := NewMerger(NonEmptyWins)

	final := m.Merge(
		entity.CandidateRecord{Name: entity.Str(""), Email: entity.Str("model@x.com")},
		entity.CandidateRecord{Name: entity.Str("John Smith"), Email: entity.Str("rule@x.com")},
	)
	assert.Equal(t, "John Smith", final.Name, "empty model value no longer overrides")
	assert.Equal(t, "model@x.com", final.Email)
}

func TestMerge_SkillsUnionContainsRuleSkills(t *testing.T) {
	m := NewMerger(KeyPresence)
	model := entity.CandidateRecord{Skills: []string{"Go", "Python"}}
	rule := entity.CandidateRecord{Skills: []string{"Python", "AWS", "Docker"}}

	final := m.Merge(model, rule)

	for _, s := range rule.Skills {
		assert.Contains(t, final.Skills, s, "rule skills are always a subset of the final set")
	}
	assert.Contains(t, final.Skills, "Go")
	assert.Equal(t, []string{"AWS", "Docker", "Go", "Python"}, final.Skills, "deduplicated and sorted")
}

func TestMerge_ExperienceFallbackIsAllOrNothing(t *testing.T) {
	m := NewMerger(KeyPresence)
	modelExp := []entity.ExperienceEntry{{Company: "ModelCo", Role: "Dev", Years: "2020–2022"}}
	ruleExp := []entity.ExperienceEntry{
		{Company: "RuleCo", Role: "Eng", Years: "2018–2020"},
		{Company: "OtherCo", Role: "Lead", Years: "2020–present"},
	}

	t.Run("model list used verbatim when non-empty", func(t *testing.T) {
		final := m.Merge(
			entity.CandidateRecord{Experience: modelExp},
			entity.CandidateRecord{Experience: ruleExp},
		)
		assert.Equal(t, modelExp, final.Experience, "never merged with rule entries")
	})

	t.Run("rule list used verbatim when model empty", func(t *testing.T) {
		final := m.Merge(
			entity.CandidateRecord{},
			entity.CandidateRecord{Experience: ruleExp},
		)
		assert.Equal(t, ruleExp, final.Experience)
	})
}

func TestMerge_EducationFallbackIsAllOrNothing(t *testing.T) {
	m := NewMerger(KeyPresence)
	final := m.Merge(
		entity.CandidateRecord{},
		entity.CandidateRecord{Education: []string{"B.Sc. CS (2015)"}},
	)
	assert.Equal(t, []string{"B.Sc. CS (2015)"}, final.Education)

	final = m.Merge(
		entity.CandidateRecord{Education: []string{"MBA (2019)"}},
		entity.CandidateRecord{Education: []string{"B.Sc. CS (2015)"}},
	)
	assert.Equal(t, []string{"MBA (2019)"}, final.Education)
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, NonEmptyWins, ParsePolicy("non-empty-wins"))
	assert.Equal(t, KeyPresence, ParsePolicy("key-presence"))
	assert.Equal(t, KeyPresence, ParsePolicy(""), "unknown values default to source-compatible behavior")
}
