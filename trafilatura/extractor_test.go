package trafilatura_test

import (
	"testing"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Shipping Policy - Acme Store</title>
<meta property="og:title" content="Shipping Policy">
</head>
<body>
<nav><a href="/">Home</a><a href="/products">Products</a></nav>
<main>
<h1>Shipping Policy</h1>
<p>Orders placed before noon ship the same business day.</p>
</main>
<footer>Copyright Acme</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "ship the same business day")
	})

	t.Run("drops navigation and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="site-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
</ul>
</nav>
<article>
<h1>Returns</h1>
<p>Items can be returned within thirty days of delivery.</p>
</article>
<footer><p>Copyright 2025 Acme Corp</p></footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "within thirty days")
		assert.NotContains(t, result.ContentHTML, "site-nav")
		assert.NotContains(t, result.ContentHTML, "Copyright 2025 Acme Corp")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>API Reference</title></head>
<body>
<article>
<h1>Quick Start</h1>
<p>Install the client library:</p>
<pre><code>pip install acme-client</code></pre>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "pip install acme-client")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, sitedex.EINVALID, sitedex.ErrorCode(err))
	})

	t.Run("handles minimal HTML", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(`<html><body><p>Simple content</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
