package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/sitedex/sitedex/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("paces repeated requests to one domain", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(100) // 10ms between requests
		ctx := context.Background()

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Wait(ctx, "example.com"))
		}
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1) // 1 rps would stall a shared bucket
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "a.com"))
		require.NoError(t, limiter.Wait(ctx, "b.com"))
		require.NoError(t, limiter.Wait(ctx, "c.com"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.1)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		require.NoError(t, limiter.Wait(ctx, "slow.com"))
		err := limiter.Wait(ctx, "slow.com") // next token is ~10s away
		require.Error(t, err)
	})
}
