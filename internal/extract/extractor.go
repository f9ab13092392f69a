// Package extract converts raw document bytes into plain text. PDFs go
// through pdftotext with a per-page tesseract fallback for scanned pages,
// DOCX files are unzipped and walked paragraph by paragraph, and anything
// else is decoded permissively as text.
package extract

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/parsecv/parsecv/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned pages, default 300
	MaxPages      int    // 0 = no limit

	// OCRWorkers bounds concurrent tesseract invocations across all
	// requests so one scan-heavy document cannot starve the rest.
	OCRWorkers int // default 4
}

type Extractor struct {
	cfg    Config
	runner Runner
	ocrSem *semaphore.Weighted
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.OCRWorkers <= 0 {
		cfg.OCRWorkers = 4
	}
	return &Extractor{
		cfg:    cfg,
		runner: execRunner{logger: logger},
		ocrSem: semaphore.NewWeighted(int64(cfg.OCRWorkers)),
		logger: logger,
	}
}

// Extract picks a strategy from the filename suffix. Only a corrupt PDF/DOCX
// container returns an error; every other degradation ends in empty text.
func (e *Extractor) Extract(ctx context.Context, doc Document) (Result, error) {
	start := time.Now()
	format := constants.FormatFromFilename(doc.Filename)
	e.logger.Debug("extract.start", "filename", doc.Filename, "format", format, "bytes", len(doc.Bytes))

	var res Result
	var err error
	switch format {
	case constants.PDF:
		res, err = e.extractPDF(ctx, doc.Bytes)
	case constants.DOCX:
		res, err = e.extractDOCX(doc.Bytes)
	default:
		res = Result{Text: decodePlain(doc.Bytes), Format: constants.TEXT, Method: "plain", Pages: 1}
	}
	res.Duration = time.Since(start)
	return res, err
}
