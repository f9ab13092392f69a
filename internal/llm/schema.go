package llm

// BuildCandidateJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// a model-produced candidate record, as a generic map. Nothing is required:
// the model extractor is advisory and partial output is acceptable, but a
// field that is present must have the right shape.
func BuildCandidateJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":   map[string]any{"type": "string"},
			"email":  map[string]any{"type": "string"},
			"phone":  map[string]any{"type": "string"},
			"skills": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"experience": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"company": map[string]any{"type": "string"},
						"role":    map[string]any{"type": "string"},
						"years":   map[string]any{"type": "string"},
					},
				},
			},
			"education": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}
}

// BuildFinalRecordJSONSchema describes the reconciled record returned to
// callers: all six fields present, correct types, never null.
func BuildFinalRecordJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"name", "email", "phone", "skills", "experience", "education"},
		"properties": map[string]any{
			"name":   map[string]any{"type": "string"},
			"email":  map[string]any{"type": "string"},
			"phone":  map[string]any{"type": "string"},
			"skills": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"experience": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"company", "role", "years"},
					"properties": map[string]any{
						"company": map[string]any{"type": "string"},
						"role":    map[string]any{"type": "string"},
						"years":   map[string]any{"type": "string"},
					},
				},
			},
			"education": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}
}
