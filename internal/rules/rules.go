// Package rules is the deterministic half of the hybrid extractor: three
// independent pattern-matching passes over normalized résumé text. The passes
// are intentionally permissive — loosely anchored, non-greedy — and their
// exact match semantics are a compatibility contract, so the patterns here
// must not be "improved".
package rules

import (
	"context"
	"log/slog"

	"github.com/parsecv/parsecv/internal/entity"
	"github.com/parsecv/parsecv/internal/ner"
)

// Extractor runs the contact, experience, and education passes. Each pass is
// total: it only ever returns empty results, never an error.
type Extractor struct {
	recognizer ner.Recognizer
	logger     *slog.Logger
}

func NewExtractor(recognizer ner.Recognizer, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{recognizer: recognizer, logger: logger}
}

// Extract produces the rule-based candidate record for normalized text.
func (e *Extractor) Extract(ctx context.Context, text string) entity.CandidateRecord {
	rec := e.extractContacts(text)
	rec.Experience = ExtractExperience(text)
	rec.Education = ExtractEducation(text)

	e.logger.Debug("rules.extract.done",
		"has_name", rec.Name != nil,
		"has_email", rec.Email != nil,
		"has_phone", rec.Phone != nil,
		"skills", len(rec.Skills),
		"experience", len(rec.Experience),
		"education", len(rec.Education),
	)
	return rec
}
