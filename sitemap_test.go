package sitedex_test

import (
	"regexp"
	"testing"

	"github.com/sitedex/sitedex"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter passes everything", func(t *testing.T) {
		t.Parallel()

		var f *sitedex.URLFilter
		assert.True(t, f.Match("https://example.com/anything"))
	})

	t.Run("include requires a match", func(t *testing.T) {
		t.Parallel()

		f := &sitedex.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)}}
		assert.True(t, f.Match("https://example.com/docs/intro"))
		assert.False(t, f.Match("https://example.com/blog/post"))
	})

	t.Run("exclude wins over include", func(t *testing.T) {
		t.Parallel()

		f := &sitedex.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/docs/v1/`)},
		}
		assert.True(t, f.Match("https://example.com/docs/intro"))
		assert.False(t, f.Match("https://example.com/docs/v1/intro"))
	})
}
