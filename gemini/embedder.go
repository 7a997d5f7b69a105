// Package gemini implements embedding generation and token counting using
// the Google Gemini API.
package gemini

import (
	"context"
	"time"

	"github.com/sitedex/sitedex"
	"google.golang.org/genai"
)

// EmbeddingModel is the Gemini model used for page and query embeddings.
const EmbeddingModel = "text-embedding-004"

// embedAttempts bounds retries against transient API failures.
const embedAttempts = 3

// Ensure Embedder implements sitedex.Embedder at compile time.
var _ sitedex.Embedder = (*Embedder)(nil)

// Embedder implements sitedex.Embedder using Google Gemini.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client, model: EmbeddingModel}
}

// Embed returns the embedding vector for the given text. Transient API
// errors are retried with a short backoff before giving up.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, sitedex.Errorf(sitedex.EINVALID, "empty embedding input")
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	var lastErr error
	for attempt := 0; attempt < embedAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second << (attempt - 1)):
			}
		}

		result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
		if err != nil {
			lastErr = err
			continue
		}
		if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
			return nil, sitedex.Errorf(sitedex.EINTERNAL, "gemini returned empty embedding")
		}
		return result.Embeddings[0].Values, nil
	}

	return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "embedding failed after %d attempts: %v", embedAttempts, lastErr)
}
