package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"codeberg.org/snonux/speedreader/internal/generate"
)

// ModelClient is the part of the OpenAI client the lister uses
type ModelClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister handles listing available OpenAI compatible models
type Lister struct {
	apiKey  string
	baseURL string
	client  ModelClient
	out     io.Writer
}

// NewLister creates a new model lister. baseURL selects an OpenAI compatible
// server instead of the OpenAI API.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return NewListerWithClient(apiKey, baseURL, openai.NewClientWithConfig(config), os.Stdout)
}

// NewListerWithClient creates a lister around an existing client writing to
// out
func NewListerWithClient(apiKey, baseURL string, client ModelClient, out io.Writer) *Lister {
	return &Lister{apiKey: apiKey, baseURL: baseURL, client: client, out: out}
}

// ListAvailableModels prints the chat models usable for text generation
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" && l.baseURL == "" {
		return fmt.Errorf("OpenAI %w. Set OPENAI_API_KEY environment variable or configure in .speedreader.yaml", generate.ErrNoAPIKey)
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}

	// A local server serves whatever it loaded, so show everything
	if l.baseURL == "" {
		ids = ChatModels(ids)
	} else {
		slices.Sort(ids)
	}

	printModels(l.out, "Available chat models:", ids, generate.DefaultOpenAIModel)
	return nil
}

// ChatModels filters OpenAI model IDs down to sorted chat models
func ChatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"), strings.Contains(id, "audio"),
			strings.Contains(id, "realtime"), strings.Contains(id, "transcribe"),
			strings.Contains(id, "dall-e"), strings.Contains(id, "image"),
			strings.Contains(id, "embedding"), strings.Contains(id, "search"):
			continue
		case strings.HasPrefix(id, "gpt"), strings.Contains(id, "chat"),
			strings.HasPrefix(id, "o1"), strings.HasPrefix(id, "o3"), strings.HasPrefix(id, "o4"):
			chat = append(chat, id)
		}
	}
	slices.Sort(chat)
	return chat
}

// ListGeminiModels prints the Gemini models that can generate content
func ListGeminiModels(ctx context.Context, apiKey string, out io.Writer) error {
	if apiKey == "" {
		return fmt.Errorf("Gemini %w. Set GEMINI_API_KEY environment variable or configure in .speedreader.yaml", generate.ErrNoAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var names []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}
		if slices.Contains(model.SupportedActions, "generateContent") {
			names = append(names, strings.TrimPrefix(model.Name, "models/"))
		}
	}
	slices.Sort(names)

	printModels(out, "Available Gemini models:", names, generate.DefaultGeminiModel)
	return nil
}

func printModels(out io.Writer, title string, ids []string, defaultModel string) {
	fmt.Fprintln(out, title)
	if len(ids) == 0 {
		fmt.Fprintln(out, "  No models found")
		return
	}
	for _, id := range ids {
		if id == defaultModel {
			fmt.Fprintf(out, "  %s (default)\n", id)
		} else {
			fmt.Fprintf(out, "  %s\n", id)
		}
	}
}
