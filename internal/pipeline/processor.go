// Package pipeline wires the extraction stages together: text extraction,
// normalization, the two independent candidate passes, and the merge.
package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/parsecv/parsecv/internal/entity"
	"github.com/parsecv/parsecv/internal/extract"
	"github.com/parsecv/parsecv/internal/llm"
	"github.com/parsecv/parsecv/internal/merge"
	"github.com/parsecv/parsecv/internal/normalize"
	"github.com/parsecv/parsecv/internal/rules"
)

// Processor coordinates one parse request end to end. It holds no per-request
// state; a single instance serves all requests concurrently.
type Processor struct {
	logger  *slog.Logger
	text    extract.TextExtractor
	rules   *rules.Extractor
	model   llm.FieldExtractor // nil disables the model pass
	merger  *merge.Merger
	metrics *Metrics // optional
}

func NewProcessor(logger *slog.Logger, text extract.TextExtractor, ruleExt *rules.Extractor, model llm.FieldExtractor, merger *merge.Merger, metrics *Metrics) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:  logger,
		text:    text,
		rules:   ruleExt,
		model:   model,
		merger:  merger,
		metrics: metrics,
	}
}

// ParseDocument runs the full hybrid pipeline for one document. The only
// error it can return is an unreadable container from the extraction stage;
// a failing model pass is recovered into an empty candidate and logged, so
// callers always get a complete record for readable input.
func (p *Processor) ParseDocument(ctx context.Context, doc extract.Document) (entity.FinalRecord, error) {
	res, err := p.text.Extract(ctx, doc)
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "filename", doc.Filename, "error", err)
		p.metrics.observe(OutcomeUnreadable)
		return entity.FinalRecord{}, err
	}
	p.logger.Info("pipeline.extract.ok",
		"filename", doc.Filename,
		"format", res.Format,
		"method", res.Method,
		"pages", res.Pages,
		"ocr_pages", res.OCRPages,
		"text_bytes", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)

	text := normalize.Normalize(res.Text)

	// The two candidate passes are independent; run them in parallel.
	var modelRec, ruleRec entity.CandidateRecord
	modelFailed := false
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ruleRec = p.rules.Extract(gctx, text)
		return nil
	})
	g.Go(func() error {
		if p.model == nil {
			return nil
		}
		rec, _, err := p.model.ExtractFields(gctx, text)
		if err != nil {
			// advisory pass: never aborts the pipeline
			p.logger.Warn("pipeline.model.failed", "filename", doc.Filename, "error", err)
			modelFailed = true
			return nil
		}
		modelRec = rec
		return nil
	})
	_ = g.Wait()

	final := p.merger.Merge(modelRec, ruleRec)

	if modelFailed {
		p.metrics.observe(OutcomeModelFallback)
	} else {
		p.metrics.observe(OutcomeOK)
	}
	p.logger.Info("pipeline.parse.ok",
		"filename", doc.Filename,
		"name", final.Name,
		"skills", len(final.Skills),
		"experience", len(final.Experience),
		"education", len(final.Education),
		"model_used", !modelFailed && p.model != nil,
	)
	return final, nil
}
