package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sitedex/sitedex"
	main "github.com/sitedex/sitedex/cmd/sitedex"
	"github.com/sitedex/sitedex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists crawls with domain and counts", func(t *testing.T) {
		t.Parallel()

		crawls := &mock.CrawlService{
			FindCrawlsFn: func(_ context.Context) ([]*sitedex.Crawl, error) {
				return []*sitedex.Crawl{
					{
						ID:         "crawl-123",
						Domain:     "example.com",
						Pages:      42,
						Failed:     2,
						StartedAt:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
						FinishedAt: time.Date(2026, 1, 15, 10, 5, 0, 0, time.UTC),
					},
					{
						ID:        "crawl-456",
						Domain:    "docs.example.org",
						StartedAt: time.Date(2026, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Crawls: crawls,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "crawl-123")
		assert.Contains(t, output, "example.com")
		assert.Contains(t, output, "42")
		assert.Contains(t, output, "running", "unfinished crawl shows as running")
	})

	t.Run("prints hint when no crawls exist", func(t *testing.T) {
		t.Parallel()

		crawls := &mock.CrawlService{
			FindCrawlsFn: func(_ context.Context) ([]*sitedex.Crawl, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Crawls: crawls,
		}

		err := (&main.ListCmd{}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No crawls found")
	})
}
