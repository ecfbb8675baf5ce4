package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	AnthropicAPIKey  string
	AnthropicAPIBase string
	OpenAIAPIKey     string
	OpenAIAPIBase    string
	GeminiAPIKey     string
	GeminiAPIBase    string
	Provider         string   // default provider kind for callers that do not choose one
	Mode             string   // default prompt mode
	Language         string   // default summary language
	TranscriptLangs  []string // caption language preference, most preferred first
	FetchTimeout     time.Duration
	LLMTimeout       time.Duration
	HTTPClient       *http.Client
	BrowserClient    *BrowserClient // nil = plain net/http page fetches
}

// Credentials returns the provider credentials held by c.
func (c Config) Credentials() Credentials {
	return Credentials{
		AnthropicAPIKey:  c.AnthropicAPIKey,
		AnthropicAPIBase: c.AnthropicAPIBase,
		OpenAIAPIKey:     c.OpenAIAPIKey,
		OpenAIAPIBase:    c.OpenAIAPIBase,
		GeminiAPIKey:     c.GeminiAPIKey,
		GeminiAPIBase:    c.GeminiAPIBase,
		HTTPClient:       &http.Client{Timeout: c.LLMTimeout},
	}
}

var cfg = Config{
	TranscriptLangs: DefaultTranscriptLangs,
	FetchTimeout:    15 * time.Second,
	LLMTimeout:      120 * time.Second,
	HTTPClient:      &http.Client{Timeout: 15 * time.Second},
}

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// DefaultTranscriptLangs is the caption language preference used when none is configured.
var DefaultTranscriptLangs = []string{"en", "es", "ko"}

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.LLMTimeout <= 0 {
		c.LLMTimeout = 120 * time.Second
	}
	if len(c.TranscriptLangs) == 0 {
		c.TranscriptLangs = DefaultTranscriptLangs
	}
	cfg = c
	Cfg = &cfg
}
