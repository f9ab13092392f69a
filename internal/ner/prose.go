package ner

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// ProseRecognizer implements Recognizer on top of the prose NLP library.
// The zero value is ready to use; prose keeps its model data in package-level
// read-only state, so the recognizer is safe to share.
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

func (r *ProseRecognizer) Recognize(text string) ([]Entity, error) {
	if text == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(true),
	)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Label: e.Label, Text: e.Text})
	}
	return out, nil
}
