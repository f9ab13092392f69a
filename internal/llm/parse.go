package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/parsecv/parsecv/internal/entity"
)

// ParseCandidate turns raw model output into a candidate record. The output
// is accepted only if it is syntactically a complete object — starts with "{"
// and ends with "}" — then decoded with encoding/json and checked against the
// candidate schema. Model output is data, never code: it is only ever parsed,
// and any failure here means the caller falls back to an empty record.
func ParseCandidate(raw string) (entity.CandidateRecord, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return entity.CandidateRecord{}, fmt.Errorf("output is not a complete object (%d bytes)", len(trimmed))
	}
	data := []byte(trimmed)
	if err := ValidateJSONAgainstSchema(BuildCandidateJSONSchema(), data); err != nil {
		return entity.CandidateRecord{}, err
	}
	var rec entity.CandidateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return entity.CandidateRecord{}, fmt.Errorf("unmarshal candidate: %w", err)
	}
	return rec, nil
}
