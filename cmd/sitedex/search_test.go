package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sitedex/sitedex"
	main "github.com/sitedex/sitedex/cmd/sitedex"
	"github.com/sitedex/sitedex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranked results", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, query string, opts sitedex.SearchOptions) ([]sitedex.SearchResult, error) {
				assert.Equal(t, "install guide", query)
				assert.Equal(t, 5, opts.Limit)
				return []sitedex.SearchResult{
					{Page: &sitedex.Page{Title: "Installation", URL: "https://example.com/install"}, Score: 0.92},
					{Page: &sitedex.Page{Title: "", URL: "https://example.com/faq"}, Score: 0.61},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Searcher: searcher,
		}

		err := (&main.SearchCmd{Query: "install guide", Limit: 5}).Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "0.920")
		assert.Contains(t, output, "Installation")
		assert.Contains(t, output, "https://example.com/install")
		assert.Contains(t, output, "(untitled)")
	})

	t.Run("passes the crawl filter through", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, _ string, opts sitedex.SearchOptions) ([]sitedex.SearchResult, error) {
				require.NotNil(t, opts.CrawlID)
				assert.Equal(t, "crawl-1", *opts.CrawlID)
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Searcher: searcher,
		}

		err := (&main.SearchCmd{Query: "q", CrawlID: "crawl-1"}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results")
	})

	t.Run("reports search errors", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, _ string, _ sitedex.SearchOptions) ([]sitedex.SearchResult, error) {
				return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "embedding API down")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Searcher: searcher,
		}

		err := (&main.SearchCmd{Query: "q"}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "embedding API down")
	})
}
