package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ChatClient is the part of the OpenAI client the generator uses
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator generates text through an OpenAI compatible chat endpoint
type OpenAIGenerator struct {
	client    ChatClient
	model     string
	maxTokens int
}

// NewOpenAIGenerator creates a generator for the OpenAI API or, with
// cfg.BaseURL set, any compatible server. A key is only required for the
// OpenAI API itself.
func NewOpenAIGenerator(cfg Config) (*OpenAIGenerator, error) {
	if cfg.OpenAIKey == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("OpenAI %w. Set OPENAI_API_KEY environment variable or configure in .speedreader.yaml", ErrNoAPIKey)
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return NewOpenAIGeneratorWithClient(openai.NewClientWithConfig(clientConfig), model, cfg.MaxTokens), nil
}

// NewOpenAIGeneratorWithClient creates a generator around an existing client
func NewOpenAIGeneratorWithClient(client ChatClient, model string, maxTokens int) *OpenAIGenerator {
	return &OpenAIGenerator{client: client, model: model, maxTokens: maxTokens}
}

// Generate implements Generator
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	content, err := BuildPrompt(prompt)
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content,
			},
		},
		MaxTokens: g.maxTokens,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
