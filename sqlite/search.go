package sqlite

import (
	"context"
	"sort"

	"github.com/sitedex/sitedex"
)

// Compile-time interface verification.
var _ sitedex.SearchService = (*SearchService)(nil)

// defaultSearchLimit bounds result sets when the caller doesn't set one.
const defaultSearchLimit = 10

// SearchService implements semantic search by embedding the query and
// ranking stored page embeddings by cosine similarity in-process. Corpora
// here are single-site crawls, small enough that a vector index would be
// overkill.
type SearchService struct {
	pages    sitedex.PageService
	embedder sitedex.Embedder
}

// NewSearchService creates a new SearchService.
func NewSearchService(pages sitedex.PageService, embedder sitedex.Embedder) *SearchService {
	return &SearchService{pages: pages, embedder: embedder}
}

// Search returns pages ordered by relevance to the query.
func (s *SearchService) Search(ctx context.Context, query string, opts sitedex.SearchOptions) ([]sitedex.SearchResult, error) {
	if query == "" {
		return nil, sitedex.Errorf(sitedex.EINVALID, "search query required")
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	embedded := true
	pages, err := s.pages.FindPages(ctx, sitedex.PageFilter{
		CrawlID:  opts.CrawlID,
		Embedded: &embedded,
	})
	if err != nil {
		return nil, err
	}

	var results []sitedex.SearchResult
	for _, page := range pages {
		score := sitedex.CosineSimilarity(queryVec, page.Embedding)
		if score < opts.MinScore {
			continue
		}
		results = append(results, sitedex.SearchResult{Page: page, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}
