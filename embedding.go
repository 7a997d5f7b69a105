package sitedex

import (
	"context"
	"math"
)

// EmbedSnippetLen caps the content prefix combined with the title as
// embedding input.
const EmbedSnippetLen = 1000

// Embedder generates vector embeddings for text.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingInput builds the text submitted for embedding: the page title
// followed by a bounded content prefix.
func EmbeddingInput(title, content string) string {
	if len(content) > EmbedSnippetLen {
		content = content[:EmbedSnippetLen]
	}
	if title == "" {
		return content
	}
	return title + ". " + content
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// Returns 0 for mismatched lengths or zero vectors.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

// SearchService provides semantic search over indexed pages.
type SearchService interface {
	// Search returns pages ordered by relevance to the query.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Filter results to a specific crawl.
	CrawlID *string `json:"crawlId,omitempty"`

	// Maximum number of results to return.
	Limit int `json:"limit,omitempty"`

	// Minimum similarity score (0-1).
	MinScore float32 `json:"minScore,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Page  *Page   `json:"page"`
	Score float32 `json:"score"`
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
