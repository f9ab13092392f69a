package constants

import (
	"path/filepath"
	"strings"
)

// Document formats handled by the text extraction stage.
const (
	PDF  = "PDF"
	DOCX = "DOCX"
	TEXT = "TEXT"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a format hint.
// Anything that is not pdf or docx is treated as plain text.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	default:
		return TEXT
	}
}

// FormatFromFilename derives the format hint from a filename suffix.
func FormatFromFilename(name string) string {
	return MapExtToFormat(filepath.Ext(name))
}
