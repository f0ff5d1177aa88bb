package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Config holds everything the remote client needs. The API key is resolved
// by the caller (config/bootstrap layer) and passed in explicitly; this
// package never reads the environment.
type Config struct {
	// APIKey authenticates against the service. Required.
	APIKey string

	// Model is the completion model identifier. Empty selects DefaultModel.
	Model string

	// Temperature is the sampling temperature for both analysis and rewrites.
	Temperature float32

	// BaseURL overrides the API endpoint for OpenAI-compatible servers.
	// Empty keeps the library default.
	BaseURL string
}

// OpenAI is the remote gateway adapter. One round trip per Complete call,
// no retry policy: a failed call degrades to heuristics upstream instead of
// being retried.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAI builds the remote client. A missing API key fails here, at
// construction time, never at call time.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: missing API key (set OPENAI_API_KEY or use offline mode)")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(cc),
		model:       model,
		temperature: cfg.Temperature,
	}, nil
}

func (c *OpenAI) Name() string { return "openai" }

// Complete performs a single chat completion. Transport and service errors
// come back as errors; a blocked or choiceless response comes back as an
// empty string. Callers treat both the same way.
func (c *OpenAI) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
