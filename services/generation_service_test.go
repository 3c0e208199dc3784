package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *GeminiGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)

	return NewGeminiGenerator(client, "gemini-test")
}

func TestGeminiGeneratorGenerate(t *testing.T) {
	var gotPath, gotBody string
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  The answer.  "}]},"finishReason":"STOP"}]}`))
	})

	generation, err := generator.Generate(context.Background(), "Question: why?")
	require.NoError(t, err)

	assert.Equal(t, "  The answer.  ", generation.Text)
	assert.True(t, strings.HasSuffix(gotPath, "gemini-test:generateContent"), gotPath)
	assert.Contains(t, gotBody, "Question: why?")
}

func TestGeminiGeneratorNoCandidates(t *testing.T) {
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := generator.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrEmptyGeneration)
}

func TestGeminiGeneratorAPIError(t *testing.T) {
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	})

	_, err := generator.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini api call failed")
}
