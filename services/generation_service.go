package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Generation is what the model produced for a prompt.
type Generation struct {
	Text string
}

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Generation, error)
}

// ErrEmptyGeneration is returned when the model answers without any
// candidate to read text from.
var ErrEmptyGeneration = errors.New("model returned no candidates")

// GeminiGenerator calls a Gemini model through the genai SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator binds a shared genai client to one model name.
func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	return &GeminiGenerator{client: client, model: model}
}

// NewGeminiClient creates the genai client used by GeminiGenerator. The client
// is safe for concurrent use and should be created once per process.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// Generate implements Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (*Generation, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini api call failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return nil, ErrEmptyGeneration
	}
	return &Generation{Text: result.Text()}, nil
}
