package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/sitedex/sitedex"
)

// Compile-time interface verification.
var _ sitedex.PageService = (*PageService)(nil)

// PageService implements sitedex.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	h := xxhash.Sum64String(content)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// CreatePage creates a new page.
func (s *PageService) CreatePage(ctx context.Context, page *sitedex.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, crawl_id, url, title, content, content_hash, embedding, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.CrawlID, page.URL, page.Title, page.Content, page.ContentHash,
		encodeEmbedding(page.Embedding), formatTime(page.FetchedAt))

	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*sitedex.Page, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, crawl_id, url, title, content, content_hash, embedding, fetched_at
		FROM pages
		WHERE id = ?
	`, id)

	page, err := scanPage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, sitedex.Errorf(sitedex.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FindPages retrieves pages matching the filter, most recently fetched first.
func (s *PageService) FindPages(ctx context.Context, filter sitedex.PageFilter) ([]*sitedex.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, crawl_id, url, title, content, content_hash, embedding, fetched_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CrawlID != nil {
		query.WriteString(" AND crawl_id = ?")
		args = append(args, *filter.CrawlID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Embedded != nil {
		if *filter.Embedded {
			query.WriteString(" AND embedding IS NOT NULL")
		} else {
			query.WriteString(" AND embedding IS NULL")
		}
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*sitedex.Page
	for rows.Next() {
		page, err := scanPage(rows.Scan)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

// UpdatePageEmbedding stores the embedding vector for a page.
func (s *PageService) UpdatePageEmbedding(ctx context.Context, id string, embedding []float32) error {
	if len(embedding) == 0 {
		return sitedex.Errorf(sitedex.EINVALID, "empty embedding")
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE pages SET embedding = ? WHERE id = ?
	`, encodeEmbedding(embedding), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitedex.Errorf(sitedex.ENOTFOUND, "page not found")
	}

	return nil
}

// DeletePagesByCrawl removes all pages for a crawl.
func (s *PageService) DeletePagesByCrawl(ctx context.Context, crawlID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE crawl_id = ?", crawlID)
	return err
}

// scanPage reads one page row via the given scan function.
func scanPage(scan func(dest ...any) error) (*sitedex.Page, error) {
	var page sitedex.Page
	var embedding []byte
	var fetchedAt string

	if err := scan(&page.ID, &page.CrawlID, &page.URL, &page.Title,
		&page.Content, &page.ContentHash, &embedding, &fetchedAt); err != nil {
		return nil, err
	}

	page.Embedding = decodeEmbedding(embedding)

	var err error
	if page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &page, nil
}
