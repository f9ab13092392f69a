// Command runextract runs text extraction for one file and reports how the
// text was obtained. Useful for checking the poppler/tesseract setup.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/parsecv/parsecv/internal/common"
	"github.com/parsecv/parsecv/internal/extract"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
		OCRWorkers:    cfg.Extract.OCRWorkers,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := extractor.Extract(ctx, extract.Document{
		Bytes:    data,
		Filename: filepath.Base(path),
	})
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"format", res.Format,
		"method", res.Method,
		"pages", res.Pages,
		"ocr_pages", res.OCRPages,
		"bytes", len(res.Text),
		"warnings", len(res.Warnings),
		"duration_ms", res.Duration.Milliseconds(),
	)
	fmt.Print(res.Text)
}
