// Package openai implements llm.FieldExtractor against any OpenAI-compatible
// chat completion endpoint.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/parsecv/parsecv/internal/entity"
	"github.com/parsecv/parsecv/internal/llm"
)

// ChatClient is the slice of the go-openai client the extractor needs; it
// lets tests substitute a canned backend.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	cfg  Config
	chat ChatClient
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	occ := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		occ.BaseURL = cfg.BaseURL
	}
	return &Client{cfg: cfg, chat: openai.NewClientWithConfig(occ), log: logger}
}

// NewClientWithBackend wires an explicit backend; used by tests.
func NewClientWithBackend(cfg Config, chat ChatClient, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg.withDefaults(), chat: chat, log: logger}
}

// ExtractFields sends the fixed extraction instruction with the résumé text
// embedded and parses the reply into a candidate record. Every call carries
// its own timeout; the caller treats any returned error as "model contributed
// nothing" and continues with rule-based results only.
func (c *Client) ExtractFields(ctx context.Context, text string) (entity.CandidateRecord, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(text),
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: 0,
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: llm.BuildExtractionPrompt(text)},
		},
	})
	if err != nil {
		c.log.Error("llm.extract.request_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.CandidateRecord{}, nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.CandidateRecord{}, nil, fmt.Errorf("no choices in completion response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	raw := []byte(content)

	rec, err := llm.ParseCandidate(content)
	if err != nil {
		c.log.Error("llm.extract.parse_failed",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.CandidateRecord{}, raw, fmt.Errorf("parse candidate: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"has_name", rec.Name != nil,
		"skills", len(rec.Skills),
		"experience", len(rec.Experience),
		"education", len(rec.Education),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, raw, nil
}
