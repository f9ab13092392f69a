// Command parsecv parses a single résumé file and prints the final record
// as JSON. It runs the same pipeline as the daemon, without the HTTP layer.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/parsecv/parsecv/internal/common"
	"github.com/parsecv/parsecv/internal/extract"
	"github.com/parsecv/parsecv/internal/llm"
	"github.com/parsecv/parsecv/internal/llm/openai"
	"github.com/parsecv/parsecv/internal/merge"
	"github.com/parsecv/parsecv/internal/ner"
	"github.com/parsecv/parsecv/internal/pipeline"
	"github.com/parsecv/parsecv/internal/rules"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parsecv <resume-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
		OCRWorkers:    cfg.Extract.OCRWorkers,
	}, logger)

	var model llm.FieldExtractor
	if !cfg.LLM.Disabled {
		model = openai.NewClient(openai.Config{
			BaseURL:   cfg.LLM.BaseURL,
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			MaxTokens: cfg.LLM.MaxTokens,
			Timeout:   cfg.LLM.Timeout,
		}, logger)
	}

	processor := pipeline.NewProcessor(logger, extractor,
		rules.NewExtractor(ner.NewProseRecognizer(), logger),
		model,
		merge.NewMerger(merge.ParsePolicy(cfg.Merge.ContactPolicy)),
		nil,
	)

	rec, err := processor.ParseDocument(ctx, extract.Document{
		Bytes:    data,
		Filename: filepath.Base(path),
	})
	if err != nil {
		logger.Error("parse failed", "path", path, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
