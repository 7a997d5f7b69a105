package fs

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/sitedex/sitedex"
)

// Ensure FileStore implements sitedex.PageSink at compile time.
var _ sitedex.PageSink = (*FileStore)(nil)

// FileStore records each visited page as a JSON snapshot on disk. Filenames
// derive from a hash of the page URL, so re-crawling the same page replaces
// its snapshot instead of accumulating duplicates. Record is safe for
// concurrent use: each call writes a distinct file.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore writing into dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Record writes the page snapshot. Embeddings are not yet assigned at crawl
// time, so snapshots carry only the extracted content and metadata.
func (s *FileStore) Record(ctx context.Context, page *sitedex.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.dir, snapshotName(page.URL)), data, 0644)
}

// snapshotName maps a URL to a stable filename.
func snapshotName(url string) string {
	var b [8]byte
	h := xxhash.Sum64String(url)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:]) + ".json"
}
