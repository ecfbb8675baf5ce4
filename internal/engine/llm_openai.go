package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

const (
	openAIModel       = "gpt-4o-mini"
	openAIMaxTokens   = 4096
	openAIDefaultBase = "https://api.openai.com/v1"
)

// openAIProvider talks to chat completions through the go-kit LLM client,
// which unwraps choices[0].message.content.
type openAIProvider struct {
	apiKey   string
	complete func(ctx context.Context, prompt string) (string, error)
}

func newOpenAIProvider(c Credentials) *openAIProvider {
	base := c.OpenAIAPIBase
	if base == "" {
		base = openAIDefaultBase
	}
	client := llm.NewClient(strings.TrimRight(base, "/"), c.OpenAIAPIKey, openAIModel,
		llm.WithMaxTokens(openAIMaxTokens),
		llm.WithHTTPClient(c.HTTPClient),
		llm.WithMaxRetries(1),
	)
	return &openAIProvider{
		apiKey: c.OpenAIAPIKey,
		complete: func(ctx context.Context, prompt string) (string, error) {
			return client.Complete(ctx, "", prompt)
		},
	}
}

func (p *openAIProvider) Name() string  { return string(ProviderOpenAI) }
func (p *openAIProvider) Model() string { return openAIModel }

func (p *openAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", missingKey(p.Name(), "OPENAI_API_KEY")
	}
	text, err := p.complete(ctx, prompt)
	if err != nil {
		return "", classifyLLMError(p.Name(), err)
	}
	if strings.TrimSpace(text) == "" {
		return "", &ProviderRequestError{Provider: p.Name(), Err: errors.New("empty completion")}
	}
	return text, nil
}

// classifyLLMError sorts go-kit client errors by the status carried in *llm.APIError.
func classifyLLMError(provider string, err error) error {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		return statusError(provider, apiErr.StatusCode, err)
	}
	return &ProviderRequestError{Provider: provider, Err: err}
}
