package llm

import "strings"

// BuildExtractionPrompt composes the fixed instruction naming the six target
// fields and their types, with the normalized résumé text embedded. The
// instruction is a read-only constant shape: identical input text yields an
// identical prompt.
func BuildExtractionPrompt(text string) string {
	parts := []string{
		"Extract the following information from this resume and return valid JSON.",
		"Always include ALL fields, even if they are empty:",
		"- name (string)",
		"- email (string)",
		"- phone (string)",
		"- skills (array of strings)",
		"- experience (array of objects with fields: company, role, years)",
		"- education (array of strings)",
		"",
		"Resume Text:",
		text,
	}
	return strings.Join(parts, "\n")
}
