package extract

import (
	"context"
	"time"
)

// Document is the ephemeral input to one extraction: raw bytes plus the
// filename whose suffix carries the format hint.
type Document struct {
	Bytes    []byte
	Filename string
}

// TextExtractor is stage 1: document bytes -> plain text.
type TextExtractor interface {
	Extract(ctx context.Context, doc Document) (Result, error)
}

// Result summarizes one extraction. Text is always set on success — possibly
// to "" — since absence of text is not an error.
type Result struct {
	Text     string
	Format   string // constants.PDF | constants.DOCX | constants.TEXT
	Method   string // "pdf-text" | "pdf-text+ocr" | "docx" | "plain"
	Pages    int
	OCRPages int // pages whose text came from the OCR fallback
	Duration time.Duration
	Warnings []string
}
