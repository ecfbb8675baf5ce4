package engine

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Credentials carries per-provider API keys and endpoints, read once at startup.
// Empty bases select the public endpoints.
type Credentials struct {
	AnthropicAPIKey  string
	AnthropicAPIBase string
	OpenAIAPIKey     string
	OpenAIAPIBase    string
	GeminiAPIKey     string
	GeminiAPIBase    string
	HTTPClient       *http.Client
}

// Provider is one text-generation service. Complete submits prompt as a
// single-turn user message and returns the plain-text completion.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// ParseProvider maps a user-supplied provider name onto a ProviderKind.
func ParseProvider(s string) (ProviderKind, error) {
	switch k := ProviderKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
		return k, nil
	case "":
		return ProviderAnthropic, nil
	}
	return "", fmt.Errorf("unknown provider %q (want anthropic, openai or gemini)", s)
}

// NewProvider builds the provider for kind. Credentials are not checked
// here; a missing key surfaces as a ProviderAuthError on first Complete.
func NewProvider(kind ProviderKind, c Credentials) (Provider, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 120 * time.Second}
	}
	switch kind {
	case ProviderAnthropic:
		return newAnthropicProvider(c), nil
	case ProviderOpenAI:
		return newOpenAIProvider(c), nil
	case ProviderGemini:
		return newGeminiProvider(c), nil
	}
	return nil, fmt.Errorf("unknown provider %q", kind)
}

// Summarize renders the prompt for req and sends it to p.
func Summarize(ctx context.Context, p Provider, req SummaryRequest) (SummaryResult, error) {
	prompt := BuildPrompt(req)
	metrics.LLMCalls.Add(1)
	text, err := p.Complete(ctx, prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return SummaryResult{}, err
	}
	return SummaryResult{Text: text, Provider: p.Name(), Model: p.Model()}, nil
}

// statusError maps an HTTP status reported by a provider client onto the
// auth/request split: 401 and 403 are credential failures.
func statusError(provider string, status int, err error) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &ProviderAuthError{Provider: provider, Err: err}
	}
	return &ProviderRequestError{Provider: provider, StatusCode: status, Err: err}
}

func missingKey(provider, envName string) error {
	return &ProviderAuthError{Provider: provider, Err: fmt.Errorf("%s: %w", envName, errMissingKey)}
}
