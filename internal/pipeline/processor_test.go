package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsecv/parsecv/internal/entity"
	"github.com/parsecv/parsecv/internal/extract"
	"github.com/parsecv/parsecv/internal/merge"
	"github.com/parsecv/parsecv/internal/ner"
	"github.com/parsecv/parsecv/internal/rules"
)

type stubText struct {
	text string
	err  error
}

func (s *stubText) Extract(context.Context, extract.Document) (extract.Result, error) {
	if s.err != nil {
		return extract.Result{}, s.err
	}
	return extract.Result{Text: s.text, Pages: 1}, nil
}

type stubModel struct {
	rec     entity.CandidateRecord
	err     error
	gotText string
}

func (s *stubModel) ExtractFields(_ context.Context, text string) (entity.CandidateRecord, []byte, error) {
	s.gotText = text
	return s.rec, nil, s.err
}

type stubRecognizer struct{ entities []ner.Entity }

func (s *stubRecognizer) Recognize(string) ([]ner.Entity, error) { return s.entities, nil }

func newProcessor(text extract.TextExtractor, model *stubModel, entities []ner.Entity) *Processor {
	ruleExt := rules.NewExtractor(&stubRecognizer{entities: entities}, nil)
	if model == nil {
		return NewProcessor(nil, text, ruleExt, nil, merge.NewMerger(merge.KeyPresence), nil)
	}
	return NewProcessor(nil, text, ruleExt, model, merge.NewMerger(merge.KeyPresence), nil)
}

func TestParseDocument_RuleOnlyWhenModelFails(t *testing.T) {
	// scenario: plain contact line, model pass failing -> rule results only
	text := "John Smith john@x.com 555-123-4567 Python Java"
	model := &stubModel{err: errors.New("inference timeout")}
	p := newProcessor(&stubText{text: text}, model,
		[]ner.Entity{{Label: ner.PersonLabel, Text: "John Smith"}})

	final, err := p.ParseDocument(context.Background(), extract.Document{Filename: "cv.txt"})
	require.NoError(t, err, "model failure is invisible to the caller")
	assert.Equal(t, "John Smith", final.Name)
	assert.Equal(t, "john@x.com", final.Email)
	assert.Equal(t, "555-123-4567", final.Phone)
	assert.Subset(t, final.Skills, []string{"Python", "Java"})
}

func TestParseDocument_EmptyInputYieldsSentinels(t *testing.T) {
	p := newProcessor(&stubText{text: ""}, nil, nil)

	final, err := p.ParseDocument(context.Background(), extract.Document{Filename: "empty.bin"})
	require.NoError(t, err)
	assert.Equal(t, entity.UnknownName, final.Name)
	assert.Equal(t, entity.NotFound, final.Email)
	assert.Equal(t, entity.NotFound, final.Phone)
	assert.Equal(t, []string{entity.NotFound}, final.Skills)
	assert.Empty(t, final.Experience)
	assert.Empty(t, final.Education)
}

func TestParseDocument_NormalizesBeforeBothPasses(t *testing.T) {
	model := &stubModel{}
	p := newProcessor(&stubText{text: "PROFESSIONAL   EXPERIENCE\nAcme - Dev 2019–2021"}, model, nil)

	final, err := p.ParseDocument(context.Background(), extract.Document{Filename: "cv.txt"})
	require.NoError(t, err)

	assert.Contains(t, model.gotText, "EXPERIENCE")
	assert.NotContains(t, model.gotText, "PROFESSIONAL EXPERIENCE")
	assert.NotContains(t, model.gotText, "\n")

	// the rule pass saw the canonical heading too
	require.Len(t, final.Experience, 1)
	assert.Equal(t, "Acme", final.Experience[0].Company)
}

func TestParseDocument_ModelRecordTakesPrecedence(t *testing.T) {
	model := &stubModel{rec: entity.CandidateRecord{
		Name:       entity.Str("Jonathan Q. Smith"),
		Skills:     []string{"Go"},
		Experience: []entity.ExperienceEntry{{Company: "ModelCo", Role: "Dev", Years: "2020–2022"}},
	}}
	p := newProcessor(&stubText{text: "John Smith Python"}, model,
		[]ner.Entity{{Label: ner.PersonLabel, Text: "John Smith"}})

	final, err := p.ParseDocument(context.Background(), extract.Document{Filename: "cv.txt"})
	require.NoError(t, err)
	assert.Equal(t, "Jonathan Q. Smith", final.Name)
	assert.ElementsMatch(t, []string{"Go", "Python"}, final.Skills)
	require.Len(t, final.Experience, 1)
	assert.Equal(t, "ModelCo", final.Experience[0].Company)
}

func TestParseDocument_UnreadableContainerSurfaces(t *testing.T) {
	wantErr := errors.New("corrupt container")
	p := newProcessor(&stubText{err: wantErr}, nil, nil)

	_, err := p.ParseDocument(context.Background(), extract.Document{Filename: "cv.pdf"})
	assert.ErrorIs(t, err, wantErr)
}
