package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Provider names accepted in Config.Provider
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default models per provider
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
)

var (
	// ErrNoAPIKey is returned when the selected provider needs a key and none
	// is configured
	ErrNoAPIKey = errors.New("API key not found")

	// ErrEmptyResponse is returned when the model produced no text
	ErrEmptyResponse = errors.New("model returned no text")

	// ErrEmptyPrompt is returned for a blank prompt
	ErrEmptyPrompt = errors.New("please enter a prompt")

	// ErrUnknownProvider is returned for an unsupported Config.Provider
	ErrUnknownProvider = errors.New("unknown generator provider")
)

// Generator produces a document from a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures a generation backend
type Config struct {
	Provider  string
	Model     string
	BaseURL   string
	MaxTokens int
	OpenAIKey string
	GeminiKey string
}

// New creates the generator selected by cfg, wrapped in a circuit breaker
func New(ctx context.Context, cfg Config, logger *slog.Logger) (Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		gen Generator
		err error
	)
	switch provider := strings.ToLower(strings.TrimSpace(cfg.Provider)); provider {
	case "", ProviderOpenAI:
		gen, err = NewOpenAIGenerator(cfg)
	case ProviderGemini:
		gen, err = NewGeminiGenerator(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewBreakerGenerator(gen, logger), nil
}

// BuildPrompt turns user input into the text sent to the model. The prompt is
// finished with a full stop, which makes completion models continue with
// prose instead of completing the sentence.
func BuildPrompt(prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	return prompt + ".", nil
}
