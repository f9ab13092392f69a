package openai

import "time"

// Config controls the inference client. Decoding is deliberately greedy
// (temperature 0) and output is bounded by MaxTokens so repeated calls on
// identical input stay reproducible modulo provider nondeterminism.
type Config struct {
	BaseURL   string // empty = provider default
	APIKey    string
	Model     string
	MaxTokens int           // default 512
	Timeout   time.Duration // per-call budget, default 45s
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 512
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
	return c
}
