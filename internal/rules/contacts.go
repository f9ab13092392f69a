package rules

import (
	"regexp"
	"strings"

	"github.com/parsecv/parsecv/internal/entity"
	"github.com/parsecv/parsecv/internal/ner"
)

var (
	reEmail = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)
	rePhone = regexp.MustCompile(`\+?\d[\d\-\s]{7,}\d`)
)

// skillDictionary is the closed, case-insensitive list of skill names the
// contacts pass looks for. It is matched by substring, not tokenized.
var skillDictionary = []string{
	"Python", "Java", "SQL", "React", "JavaScript", "C++", "C#", ".NET",
	"Azure", "AWS", "Kubernetes", "Docker", "Tableau", "TensorFlow",
	"PyTorch", "Node.js", "Express", "HTML", "CSS", "MongoDB", "PostgreSQL",
}

// extractContacts finds name, email, phone, and dictionary skills. The name
// is the first person entity in document order; a recognizer failure degrades
// to no name rather than an error.
func (e *Extractor) extractContacts(text string) entity.CandidateRecord {
	var rec entity.CandidateRecord

	entities, err := e.recognizer.Recognize(text)
	if err != nil {
		e.logger.Warn("rules.ner.failed", "error", err)
	}
	if name := ner.FirstPerson(entities); name != "" {
		rec.Name = entity.Str(name)
	}

	if m := reEmail.FindString(text); m != "" {
		rec.Email = entity.Str(m)
	}
	if m := rePhone.FindString(text); m != "" {
		rec.Phone = entity.Str(m)
	}

	rec.Skills = MatchSkills(text)
	return rec
}

// MatchSkills returns the dictionary entries whose name appears anywhere in
// the text, case-insensitively, in dictionary order.
func MatchSkills(text string) []string {
	lower := strings.ToLower(text)
	var skills []string
	for _, s := range skillDictionary {
		if strings.Contains(lower, strings.ToLower(s)) {
			skills = append(skills, s)
		}
	}
	return skills
}
