package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/sitedex/sitedex"
	sdhttp "github.com/sitedex/sitedex/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlset(urls ...string) string {
	s := `<?xml version="1.0" encoding="UTF-8"?><urlset>`
	for _, u := range urls {
		s += "<url><loc>" + u + "</loc></url>"
	}
	return s + "</urlset>"
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("uses robots.txt sitemap directives", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/pages.xml\n", srv.URL)
		})
		mux.HandleFunc("/pages.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/a", srv.URL+"/b"))
		})

		svc := sdhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("falls back to /sitemap.xml", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/only"))
		})

		svc := sdhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/only"}, urls)
	})

	t.Run("resolves sitemap indexes recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?><sitemapindex>
				<sitemap><loc>%s/child1.xml</loc></sitemap>
				<sitemap><loc>%s/child2.xml</loc></sitemap>
			</sitemapindex>`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/child1.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/a"))
		})
		mux.HandleFunc("/child2.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/b", srv.URL+"/a"))
		})

		svc := sdhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls, "duplicates across children collapse")
	})

	t.Run("applies the URL filter", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, urlset(srv.URL+"/docs/a", srv.URL+"/blog/b"))
		})

		filter := &sitedex.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)}}
		svc := sdhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, filter)
		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/a"}, urls)
	})

	t.Run("no sitemap yields an empty slice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		svc := sdhttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("invalid base URL is rejected", func(t *testing.T) {
		t.Parallel()

		svc := sdhttp.NewSitemapService(nil)
		_, err := svc.DiscoverURLs(context.Background(), "http://exa mple.com/%zz", nil)
		require.Error(t, err)
		assert.Equal(t, sitedex.EINVALID, sitedex.ErrorCode(err))
	})
}
