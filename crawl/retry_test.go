package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelays(t *testing.T) {
	t.Parallel()

	assert.Empty(t, crawl.BackoffDelays(0))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, crawl.BackoffDelays(3))
}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	ok := &sitedex.FetchResult{HTML: "ok", ContentType: "text/html", StatusCode: 200}

	t.Run("no delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (*sitedex.FetchResult, error) {
			attempts++
			return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "boom")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (*sitedex.FetchResult, error) {
			attempts++
			if attempts < 3 {
				return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "boom")
			}
			return ok, nil
		}

		delays := []time.Duration{time.Millisecond, time.Millisecond}
		res, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, delays)
		require.NoError(t, err)
		assert.Equal(t, ok, res)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns the last error when attempts run out", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (*sitedex.FetchResult, error) {
			attempts++
			return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "attempt %d", attempts)
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch,
			nil, []time.Duration{time.Millisecond})
		require.Error(t, err)
		assert.Equal(t, 2, attempts)
		assert.Equal(t, "attempt 2", sitedex.ErrorMessage(err))
	})

	t.Run("stops waiting when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (*sitedex.FetchResult, error) {
			cancel()
			return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "boom")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, "https://example.com", fetch,
			nil, []time.Duration{time.Minute})
		require.ErrorIs(t, err, context.Canceled)
	})
}
