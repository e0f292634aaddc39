// Package openai adapts the OpenAI chat completion API to the aigen
// provider contract.
package openai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
)

const (
	maxTokens   = 4000
	temperature = 0.7
)

type Client struct {
	api   *openai.Client
	model string
}

// New builds an adapter for the given API key and model, e.g. gpt-4o-mini.
func New(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// newWithConfig exists for tests that point the SDK at a local server.
func newWithConfig(cfg openai.ClientConfig, model string) *Client {
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

func (c *Client) Name() aigen.Provider { return aigen.ProviderOpenAI }

// Generate issues one chat completion call and returns the raw completion
// text. Transport and API failures come back classified into the shared
// taxonomy.
func (c *Client) Generate(ctx context.Context, req aigen.GenerationRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: aigen.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: aigen.BuildPrompt(req)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", aigen.NewProviderError(aigen.ProviderOpenAI, 0, "completion contained no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return aigen.NewProviderError(aigen.ProviderOpenAI, apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return aigen.NewProviderError(aigen.ProviderOpenAI, reqErr.HTTPStatusCode, reqErr.Error(), err)
	}

	return aigen.NewProviderError(aigen.ProviderOpenAI, 0, err.Error(), err)
}
