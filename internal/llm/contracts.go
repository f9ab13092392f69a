package llm

import (
	"context"

	"github.com/parsecv/parsecv/internal/entity"
)

// FieldExtractor is the interface the pipeline depends on for model-based
// extraction: normalized résumé text in, candidate record out. The raw model
// output is returned alongside for logging and diagnosis.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, text string) (entity.CandidateRecord, []byte, error)
}
