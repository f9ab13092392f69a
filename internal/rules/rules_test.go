package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsecv/parsecv/internal/entity"
	"github.com/parsecv/parsecv/internal/ner"
)

// stubRecognizer lets tests control entity output without loading NLP models.
type stubRecognizer struct {
	entities []ner.Entity
	err      error
}

func (s *stubRecognizer) Recognize(string) ([]ner.Entity, error) {
	return s.entities, s.err
}

func TestExtract_Contacts(t *testing.T) {
	rec := &stubRecognizer{entities: []ner.Entity{
		{Label: "GPE", Text: "Boston"},
		{Label: ner.PersonLabel, Text: "John Smith"},
		{Label: ner.PersonLabel, Text: "Jane Doe"},
	}}
	e := NewExtractor(rec, nil)

	out := e.Extract(context.Background(), "John Smith john@x.com +1 555-123-4567 Python Java")

	require.NotNil(t, out.Name)
	assert.Equal(t, "John Smith", *out.Name, "first person entity wins")
	require.NotNil(t, out.Email)
	assert.Equal(t, "john@x.com", *out.Email)
	require.NotNil(t, out.Phone)
	assert.Subset(t, out.Skills, []string{"Python", "Java"})
}

func TestExtract_RecognizerFailureDegradesToNoName(t *testing.T) {
	e := NewExtractor(&stubRecognizer{err: errors.New("model unavailable")}, nil)
	out := e.Extract(context.Background(), "jane@corp.io")
	assert.Nil(t, out.Name)
	require.NotNil(t, out.Email)
	assert.Equal(t, "jane@corp.io", *out.Email)
}

func TestExtract_NothingFound(t *testing.T) {
	e := NewExtractor(&stubRecognizer{}, nil)
	out := e.Extract(context.Background(), "completely unrelated prose")
	assert.True(t, out.Empty())
}

func TestPhonePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"call 555-123-4567 now", "555-123-4567"},
		{"+14155551234", "+14155551234"},
		{"tel: +1 415 555 1234", "+1 415 555 1234"},
		{"too short 12345", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rePhone.FindString(tt.in), "input %q", tt.in)
	}
}

func TestMatchSkills_CaseInsensitiveSubstring(t *testing.T) {
	skills := MatchSkills("experienced with python, KUBERNETES and node.js")
	assert.Subset(t, skills, []string{"Python", "Kubernetes", "Node.js"})

	assert.Empty(t, MatchSkills("fluent in COBOL"))

	// substring matching means JavaScript text also hits Java; that is the
	// documented dictionary behavior, not a bug
	skills = MatchSkills("JavaScript developer")
	assert.Contains(t, skills, "Java")
	assert.Contains(t, skills, "JavaScript")
}

func TestExtractExperience_SingleMatch(t *testing.T) {
	got := ExtractExperience("EXPERIENCE Acme Corp - Senior Engineer 2019–2021")
	require.Len(t, got, 1)
	assert.Equal(t, entity.ExperienceEntry{
		Company: "Acme Corp",
		Role:    "Senior Engineer",
		Years:   "2019–2021",
	}, got[0])
}

func TestExtractExperience_GlobalMatchesInOrder(t *testing.T) {
	text := "EXPERIENCE Acme Corp - Engineer 2019–2021 " +
		"Work Globex, Lead Developer 2021–present"
	got := ExtractExperience(text)
	require.Len(t, got, 2)
	assert.Equal(t, "2019–2021", got[0].Years)
	assert.Equal(t, "2021–present", got[1].Years)
	assert.Equal(t, "Lead Developer", got[1].Role)
}

func TestExtractExperience_CaseInsensitiveAndPresent(t *testing.T) {
	got := ExtractExperience("work at Initech - Analyst 2020–PRESENT")
	require.Len(t, got, 1)
	assert.Equal(t, "2020–PRESENT", got[0].Years)
}

func TestExtractExperience_NoKeywordNoMatch(t *testing.T) {
	assert.Empty(t, ExtractExperience("Acme Corp - Engineer 2019–2021"))
	// hyphen-minus year ranges do not match; the pattern requires an en dash
	assert.Empty(t, ExtractExperience("EXPERIENCE Acme - Engineer 2019-2021"))
}

func TestExtractEducation(t *testing.T) {
	text := "EDUCATION B.Sc. Computer Science, MIT (2015) M.Sc. AI, Stanford (2017)"
	got := ExtractEducation(text)
	require.Len(t, got, 2)
	assert.Equal(t, "B.Sc. Computer Science, MIT (2015)", got[0])
	assert.Equal(t, "M.Sc. AI, Stanford (2017)", got[1])
}

func TestExtractEducation_KeywordsCaseInsensitive(t *testing.T) {
	got := ExtractEducation("bachelor of arts, State University (2010)")
	require.Len(t, got, 1)
	assert.Equal(t, "bachelor of arts, State University (2010)", got[0])
}

func TestExtractEducation_RequiresYearAndParen(t *testing.T) {
	assert.Empty(t, ExtractEducation("B.Sc. Computer Science, MIT"))
	assert.Empty(t, ExtractEducation("Master of Science 2017"))
}
