package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Record(t *testing.T) {
	t.Parallel()

	t.Run("writes a JSON snapshot per page", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := fs.NewFileStore(dir)
		require.NoError(t, err)

		page := &sitedex.Page{
			CrawlID: "c1",
			URL:     "https://example.com/docs",
			Title:   "Docs",
			Content: "# Docs",
		}
		require.NoError(t, store.Record(context.Background(), page))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		data, err := os.ReadFile(dir + "/" + entries[0].Name())
		require.NoError(t, err)

		var got sitedex.Page
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, page.URL, got.URL)
		assert.Equal(t, page.Content, got.Content)
	})

	t.Run("re-recording a URL replaces its snapshot", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store, err := fs.NewFileStore(dir)
		require.NoError(t, err)

		page := &sitedex.Page{CrawlID: "c1", URL: "https://example.com/a", Content: "v1"}
		require.NoError(t, store.Record(context.Background(), page))
		page.Content = "v2"
		require.NoError(t, store.Record(context.Background(), page))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects invalid pages", func(t *testing.T) {
		t.Parallel()

		store, err := fs.NewFileStore(t.TempDir())
		require.NoError(t, err)

		err = store.Record(context.Background(), &sitedex.Page{})
		require.Error(t, err)
		assert.Equal(t, sitedex.EINVALID, sitedex.ErrorCode(err))
	})
}
