// Package gemini adapts the Google Gemini content generation API to the
// aigen provider contract.
package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
)

const (
	maxOutputTokens = 4000
	temperature     = 0.7
)

type Client struct {
	apiKey string
	model  string
}

// New builds an adapter for the given API key and model, e.g.
// gemini-1.5-flash-latest.
func New(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model}
}

func (c *Client) Name() aigen.Provider { return aigen.ProviderGemini }

// Generate issues one generateContent call and returns the concatenated
// text parts of the first candidate. The SDK client is cheap to construct,
// so one is opened per call and closed on return.
func (c *Client) Generate(ctx context.Context, req aigen.GenerationRequest) (string, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", classify(err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	m.SetTemperature(temperature)
	m.SetMaxOutputTokens(maxOutputTokens)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(aigen.SystemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(aigen.BuildPrompt(req)))
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", aigen.NewProviderError(aigen.ProviderGemini, 0, "response contained no candidates", nil)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", aigen.NewProviderError(aigen.ProviderGemini, 0, "candidate contained no text parts", nil)
	}
	return b.String(), nil
}

func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		// Gemini reports a bad API key as HTTP 400.
		if gerr.Code == 400 {
			return aigen.NewAuthError(aigen.ProviderGemini, gerr.Code, gerr.Message)
		}
		return aigen.NewProviderError(aigen.ProviderGemini, gerr.Code, gerr.Message, err)
	}
	return aigen.NewProviderError(aigen.ProviderGemini, 0, err.Error(), err)
}
