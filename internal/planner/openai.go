package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.ChatModelGPT4oMini

// OpenAIProvider implements Provider on top of the official OpenAI client.
type OpenAIProvider struct {
	client    openai.Client
	model     openai.ChatModel
	available bool
}

// NewOpenAIProvider constructs a provider for the given API key and model.
// An empty apiKey yields a provider that reports IsAvailable() == false and
// fails every Complete call, which lets the rest of the system run (and fall
// back) without credentials.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	m := DefaultModel
	if model != "" {
		m = openai.ChatModel(model)
	}
	return &OpenAIProvider{
		client:    openai.NewClient(option.WithAPIKey(apiKey)),
		model:     m,
		available: apiKey != "",
	}
}

// IsAvailable reports whether an API key was configured.
func (p *OpenAIProvider) IsAvailable() bool {
	return p.available
}

// Complete sends the prompt as a single user message and returns the text of
// the first choice. The context carries the caller's deadline; a timeout here
// abandons the wait only — the remote call may keep running.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	if !p.available {
		return "", errors.New("openai: no API key configured")
	}

	params := openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
