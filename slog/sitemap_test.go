package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/mock"
	sdslog "github.com/sitedex/sitedex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService(t *testing.T) {
	t.Parallel()

	next := &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *sitedex.URLFilter) ([]string, error) {
			return []string{"https://example.com/a", "https://example.com/b"}, nil
		},
	}

	buf := &bytes.Buffer{}
	svc := sdslog.NewLoggingSitemapService(next, debugLogger(buf))

	urls, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)
	require.NoError(t, err)
	assert.Len(t, urls, 2)
	assert.Contains(t, buf.String(), "sitemap discovery")
	assert.Contains(t, buf.String(), "count=2")
}
