package sqlite_test

import (
	"context"
	"testing"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlService_CreateCrawl(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and start time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(mustOpenDB(t))
		ctx := context.Background()

		cr := &sitedex.Crawl{SeedURL: "https://example.com", Domain: "example.com"}
		require.NoError(t, svc.CreateCrawl(ctx, cr))
		assert.NotEmpty(t, cr.ID)
		assert.False(t, cr.StartedAt.IsZero())

		got, err := svc.FindCrawlByID(ctx, cr.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.SeedURL)
		assert.Equal(t, "example.com", got.Domain)
		assert.True(t, got.FinishedAt.IsZero(), "unfinished crawl has zero finish time")
	})

	t.Run("rejects invalid crawl", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(mustOpenDB(t))
		err := svc.CreateCrawl(context.Background(), &sitedex.Crawl{})
		require.Error(t, err)
		assert.Equal(t, sitedex.EINVALID, sitedex.ErrorCode(err))
	})
}

func TestCrawlService_FinishCrawl(t *testing.T) {
	t.Parallel()

	t.Run("records counts and finish time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(mustOpenDB(t))
		ctx := context.Background()

		cr := &sitedex.Crawl{SeedURL: "https://example.com", Domain: "example.com"}
		require.NoError(t, svc.CreateCrawl(ctx, cr))
		require.NoError(t, svc.FinishCrawl(ctx, cr.ID, 42, 3))

		got, err := svc.FindCrawlByID(ctx, cr.ID)
		require.NoError(t, err)
		assert.Equal(t, 42, got.Pages)
		assert.Equal(t, 3, got.Failed)
		assert.False(t, got.FinishedAt.IsZero())
	})

	t.Run("unknown crawl is not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(mustOpenDB(t))
		err := svc.FinishCrawl(context.Background(), "missing", 1, 0)
		require.Error(t, err)
		assert.Equal(t, sitedex.ENOTFOUND, sitedex.ErrorCode(err))
	})
}

func TestCrawlService_FindCrawls(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewCrawlService(mustOpenDB(t))
	ctx := context.Background()

	for _, domain := range []string{"a.com", "b.com"} {
		cr := &sitedex.Crawl{SeedURL: "https://" + domain, Domain: domain}
		require.NoError(t, svc.CreateCrawl(ctx, cr))
	}

	crawls, err := svc.FindCrawls(ctx)
	require.NoError(t, err)
	assert.Len(t, crawls, 2)
}

func TestCrawlService_DeleteCrawl(t *testing.T) {
	t.Parallel()

	t.Run("cascades to pages", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		crawls := sqlite.NewCrawlService(db)
		pages := sqlite.NewPageService(db)
		ctx := context.Background()

		cr := &sitedex.Crawl{SeedURL: "https://example.com", Domain: "example.com"}
		require.NoError(t, crawls.CreateCrawl(ctx, cr))
		require.NoError(t, pages.CreatePage(ctx, &sitedex.Page{
			CrawlID: cr.ID,
			URL:     "https://example.com/a",
			Content: "body",
		}))

		require.NoError(t, crawls.DeleteCrawl(ctx, cr.ID))

		got, err := pages.FindPages(ctx, sitedex.PageFilter{CrawlID: &cr.ID})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown crawl is not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCrawlService(mustOpenDB(t))
		err := svc.DeleteCrawl(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, sitedex.ENOTFOUND, sitedex.ErrorCode(err))
	})
}
