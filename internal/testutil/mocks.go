package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
)

// MockGenerator mocks a text generator
type MockGenerator struct {
	mu        sync.Mutex
	Responses map[string]string
	Errors    map[string]error
	Calls     []string
}

// Generate mocks generating a document from prompt
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("Generate: %s", prompt))

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err, ok := m.Errors[prompt]; ok {
		return "", err
	}

	if text, ok := m.Responses[prompt]; ok {
		return text, nil
	}

	// Default response
	return fmt.Sprintf("A short story about %s.", prompt), nil
}

// CallCount returns the number of Generate calls
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockChatClient mocks the OpenAI chat completion API
type MockChatClient struct {
	Responses map[string]string
	Errors    map[string]error
	Requests  []openai.ChatCompletionRequest
}

// CreateChatCompletion mocks OpenAI chat completions, keyed by the content
// of the first message
func (m *MockChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.Requests = append(m.Requests, req)

	key := ""
	if len(req.Messages) > 0 {
		key = req.Messages[0].Content
	}

	if err, ok := m.Errors[key]; ok {
		return openai.ChatCompletionResponse{}, err
	}

	content, ok := m.Responses[key]
	if !ok {
		return openai.ChatCompletionResponse{}, nil
	}

	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}, nil
}

// MockSoundPlayer mocks background sound playback
type MockSoundPlayer struct {
	mu      sync.Mutex
	Path    string
	Playing bool
	Errors  map[string]error
	Calls   []string
}

// Load mocks loading a sound file
func (m *MockSoundPlayer) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("LOAD %s", path))
	if err, ok := m.Errors["load"]; ok {
		return err
	}
	m.Path = path
	return nil
}

// PlayLoop mocks starting looped playback
func (m *MockSoundPlayer) PlayLoop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, "PLAY")
	if err, ok := m.Errors["play"]; ok {
		return err
	}
	m.Playing = true
	return nil
}

// Stop mocks stopping playback
func (m *MockSoundPlayer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, "STOP")
	m.Playing = false
}

// IsPlaying reports whether PlayLoop succeeded and Stop was not called since
func (m *MockSoundPlayer) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Playing
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// GenerateDocument returns a document of n words mixing stop words and
// content words
func (g *TestDataGenerator) GenerateDocument(n int) string {
	words := []string{"The", "quick", "brown", "fox", "and", "the", "lazy", "dog."}
	out := make([]string, n)
	for i := range out {
		out[i] = words[i%len(words)]
	}
	return strings.Join(out, " ")
}

// GenerateAudioData generates mock audio data
func (g *TestDataGenerator) GenerateAudioData() []byte {
	// Simple mock MP3 header
	return []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
}
