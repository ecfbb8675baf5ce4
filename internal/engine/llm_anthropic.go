package engine

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	anthropicModel       = "claude-3-5-haiku-20241022"
	anthropicMaxTokens   = 2000
	anthropicTemperature = 0.5
)

// anthropicProvider calls the Messages API and joins the text blocks of the reply.
type anthropicProvider struct {
	apiKey string
	client anthropic.Client
}

func newAnthropicProvider(c Credentials) *anthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(c.AnthropicAPIKey),
		option.WithHTTPClient(c.HTTPClient),
		option.WithMaxRetries(0),
	}
	if c.AnthropicAPIBase != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(c.AnthropicAPIBase, "/")))
	}
	return &anthropicProvider{apiKey: c.AnthropicAPIKey, client: anthropic.NewClient(opts...)}
}

func (p *anthropicProvider) Name() string  { return string(ProviderAnthropic) }
func (p *anthropicProvider) Model() string { return anthropicModel }

func (p *anthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", missingKey(p.Name(), "ANTHROPIC_API_KEY")
	}
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(anthropicModel),
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(anthropicTemperature),
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", statusError(p.Name(), apiErr.StatusCode, err)
		}
		return "", &ProviderRequestError{Provider: p.Name(), Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &ProviderRequestError{Provider: p.Name(), StatusCode: http.StatusOK, Err: errors.New("no text content in response")}
	}
	return sb.String(), nil
}
