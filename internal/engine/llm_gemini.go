package engine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const (
	geminiModel     = "gemini-2.5-flash"
	geminiMaxTokens = 8192
)

// geminiProvider calls generateContent through the genai client and reads
// the first candidate with resp.Text.
type geminiProvider struct {
	apiKey string
	base   string
	client *http.Client
}

func newGeminiProvider(c Credentials) *geminiProvider {
	return &geminiProvider{apiKey: c.GeminiAPIKey, base: c.GeminiAPIBase, client: c.HTTPClient}
}

func (p *geminiProvider) Name() string  { return string(ProviderGemini) }
func (p *geminiProvider) Model() string { return geminiModel }

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", missingKey(p.Name(), "GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      p.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  p.client,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.base},
	})
	if err != nil {
		return "", &ProviderRequestError{Provider: p.Name(), Err: err}
	}

	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: geminiMaxTokens,
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			if geminiKeyRejected(apiErr) {
				return "", &ProviderAuthError{Provider: p.Name(), Err: err}
			}
			return "", statusError(p.Name(), apiErr.Code, err)
		}
		return "", &ProviderRequestError{Provider: p.Name(), Err: err}
	}

	if len(resp.Candidates) == 0 {
		reason := "no candidates"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = "prompt blocked: " + string(resp.PromptFeedback.BlockReason)
		}
		return "", &ProviderRequestError{Provider: p.Name(), StatusCode: http.StatusOK, Err: errors.New(reason)}
	}
	text := resp.Text()
	if text == "" {
		return "", &ProviderRequestError{Provider: p.Name(), StatusCode: http.StatusOK,
			Err: fmt.Errorf("empty candidate (finish reason %s)", resp.Candidates[0].FinishReason)}
	}
	return text, nil
}

// geminiKeyRejected reports invalid keys, which Gemini answers with 400 INVALID_ARGUMENT.
func geminiKeyRejected(e genai.APIError) bool {
	for _, d := range e.Details {
		if reason, _ := d["reason"].(string); reason == "API_KEY_INVALID" {
			return true
		}
	}
	return strings.Contains(e.Message, "API key not valid")
}
