package mock

import (
	"context"

	"github.com/sitedex/sitedex"
)

var _ sitedex.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of sitedex.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

var _ sitedex.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of sitedex.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts sitedex.SearchOptions) ([]sitedex.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts sitedex.SearchOptions) ([]sitedex.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}

var _ sitedex.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of sitedex.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
