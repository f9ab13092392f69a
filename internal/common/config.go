package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Extract ExtractConfig
	LLM     LLMConfig
	Merge   MergeConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr    string
	BodyLimitMB int
}

// ExtractConfig holds text extraction and OCR configuration
type ExtractConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
	OCRWorkers    int
}

// LLMConfig holds inference-related configuration
type LLMConfig struct {
	BaseURL   string
	Model     string
	APIKey    string
	MaxTokens int
	Timeout   time.Duration
	Disabled  bool
}

// MergeConfig holds merge policy configuration
type MergeConfig struct {
	ContactPolicy string // "key-presence" (source-compatible) or "non-empty-wins"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
			BodyLimitMB: getEnvAsInt("HTTP_BODY_LIMIT_MB", 20),
		},
		Extract: ExtractConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			OCRWorkers:    getEnvAsInt("OCR_WORKERS", 4),
		},
		LLM: LLMConfig{
			BaseURL:   getEnv("OPENAI_BASE_URL", ""),
			Model:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			MaxTokens: getEnvAsInt("OPENAI_MAX_TOKENS", 512),
			Timeout:   getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			Disabled:  getEnvAsBool("LLM_DISABLED", false),
		},
		Merge: MergeConfig{
			ContactPolicy: getEnv("MERGE_CONTACT_POLICY", "key-presence"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if !c.LLM.Disabled && c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required unless LLM_DISABLED=true", ErrInvalidInput)
	}
	switch c.Merge.ContactPolicy {
	case "key-presence", "non-empty-wins":
	default:
		return NewAppError("CONFIG_ERROR", "MERGE_CONTACT_POLICY must be key-presence or non-empty-wins", ErrInvalidInput)
	}
	if c.Extract.OCRWorkers <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
