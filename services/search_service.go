package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github/itish2003/pdfchat/logger"
	"github/itish2003/pdfchat/models"

	chromago "github.com/amikos-tech/chroma-go/pkg/api/v2"
	chromaembeddings "github.com/amikos-tech/chroma-go/pkg/embeddings"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Searcher finds stored document excerpts relevant to a free-text query and
// returns them as one block of text ready to be placed in a prompt.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// ChromaSearcher answers searches from a Chroma collection. The query is
// embedded first, then the nearest chunks are fetched.
type ChromaSearcher struct {
	collection chromago.Collection
	embedder   embeddings.Embedder
	nResults   int
}

// NewChromaSearcher wires a collection handle and an embedder. Both are
// created once in main and are safe to share between requests.
func NewChromaSearcher(collection chromago.Collection, embedder embeddings.Embedder, nResults int) *ChromaSearcher {
	if nResults <= 0 {
		nResults = 3
	}
	return &ChromaSearcher{
		collection: collection,
		embedder:   embedder,
		nResults:   nResults,
	}
}

// NewOllamaEmbedder returns a langchaingo embedder backed by an Ollama
// embedding model, e.g. nomic-embed-text.
func NewOllamaEmbedder(serverURL, model string) (embeddings.Embedder, error) {
	llm, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama embedder: %w", err)
	}
	return embedder, nil
}

// Search implements Searcher.
func (s *ChromaSearcher) Search(ctx context.Context, query string) (string, error) {
	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to embed query text: %w", err)
	}

	results, err := s.collection.Query(
		ctx,
		chromago.WithQueryEmbeddings(chromaembeddings.NewEmbeddingFromFloat32(vector)),
		chromago.WithNResults(s.nResults),
	)
	if err != nil {
		return "", fmt.Errorf("failed to query chromadb: %w", err)
	}

	var excerpts []models.Excerpt
	documentGroups := results.GetDocumentsGroups()
	metadataGroups := results.GetMetadatasGroups()
	if len(documentGroups) > 0 {
		for i, doc := range documentGroups[0] {
			text := doc.ContentString()
			if strings.TrimSpace(text) == "" {
				continue
			}
			var metadata any
			if len(metadataGroups) > 0 && i < len(metadataGroups[0]) {
				metadata = metadataGroups[0][i]
			}
			excerpts = append(excerpts, models.Excerpt{
				Text:   text,
				Source: sourceFromMetadata(metadata),
			})
		}
	}

	logger.DebugWithFields("retrieved document excerpts", logger.Fields{
		"count":       len(excerpts),
		"n_requested": s.nResults,
	})
	return FormatExcerpts(excerpts), nil
}

// FormatExcerpts renders the excerpt set as numbered blocks separated by a
// blank line. An empty set renders as an explicit marker so the model knows
// nothing matched.
func FormatExcerpts(excerpts []models.Excerpt) string {
	if len(excerpts) == 0 {
		return "No relevant documents were found."
	}

	var sb strings.Builder
	for i, excerpt := range excerpts {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if excerpt.Source != "" {
			fmt.Fprintf(&sb, "[%d] (source: %s)\n", i+1, excerpt.Source)
		} else {
			fmt.Fprintf(&sb, "[%d]\n", i+1)
		}
		sb.WriteString(strings.TrimSpace(excerpt.Text))
	}
	return sb.String()
}

// sourceFromMetadata pulls the originating file out of a chunk's metadata.
// The chroma metadata type has no map accessor, so it goes through JSON.
func sourceFromMetadata(metadata any) string {
	if metadata == nil {
		return ""
	}
	jsonBytes, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	var metadataMap map[string]any
	if err := json.Unmarshal(jsonBytes, &metadataMap); err != nil {
		return ""
	}
	for _, key := range []string{"source_file", "source"} {
		if v, ok := metadataMap[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
