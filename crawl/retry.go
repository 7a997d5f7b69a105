package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitedex/sitedex"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (*sitedex.FetchResult, error)

// BackoffDelays returns n exponential backoff delays starting at 1s
// (1s, 2s, 4s, ...), for opt-in fetch retries.
func BackoffDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

// FetchWithRetryDelays attempts a fetch with backoff delays between
// attempts. A nil or empty delays slice means a single attempt with no
// retry, which is the crawl default: a failed URL is not worth stalling a
// worker for.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (*sitedex.FetchResult, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := fetch(ctx, url)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Debug("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
