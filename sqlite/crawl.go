package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitedex/sitedex"
)

// Compile-time interface verification.
var _ sitedex.CrawlService = (*CrawlService)(nil)

// CrawlService implements sitedex.CrawlService using SQLite.
type CrawlService struct {
	db *DB
}

// NewCrawlService creates a new CrawlService.
func NewCrawlService(db *DB) *CrawlService {
	return &CrawlService{db: db}
}

// CreateCrawl records the start of a crawl run.
func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *sitedex.Crawl) error {
	if err := crawl.Validate(); err != nil {
		return err
	}

	crawl.ID = uuid.New().String()
	crawl.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawls (id, seed_url, domain, pages, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, crawl.ID, crawl.SeedURL, crawl.Domain, crawl.Pages, crawl.Failed,
		formatTime(crawl.StartedAt), formatTime(crawl.FinishedAt))

	return err
}

// FinishCrawl records the final page and failure counts.
func (s *CrawlService) FinishCrawl(ctx context.Context, id string, pages, failed int) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE crawls
		SET pages = ?, failed = ?, finished_at = ?
		WHERE id = ?
	`, pages, failed, formatTime(time.Now().UTC()), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitedex.Errorf(sitedex.ENOTFOUND, "crawl not found")
	}

	return nil
}

// FindCrawlByID retrieves a crawl by ID.
func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*sitedex.Crawl, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, domain, pages, failed, started_at, finished_at
		FROM crawls
		WHERE id = ?
	`, id)

	crawl, err := scanCrawl(row.Scan)
	if err == sql.ErrNoRows {
		return nil, sitedex.Errorf(sitedex.ENOTFOUND, "crawl not found")
	}
	if err != nil {
		return nil, err
	}

	return crawl, nil
}

// FindCrawls retrieves all crawls, most recent first.
func (s *CrawlService) FindCrawls(ctx context.Context) ([]*sitedex.Crawl, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT id, seed_url, domain, pages, failed, started_at, finished_at
		FROM crawls
		ORDER BY started_at DESC
	`)

	rows, err := s.db.QueryContext(ctx, query.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crawls []*sitedex.Crawl
	for rows.Next() {
		crawl, err := scanCrawl(rows.Scan)
		if err != nil {
			return nil, err
		}
		crawls = append(crawls, crawl)
	}

	return crawls, rows.Err()
}

// DeleteCrawl permanently removes a crawl; associated pages cascade.
func (s *CrawlService) DeleteCrawl(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM crawls WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitedex.Errorf(sitedex.ENOTFOUND, "crawl not found")
	}

	return nil
}

// scanCrawl reads one crawl row via the given scan function.
func scanCrawl(scan func(dest ...any) error) (*sitedex.Crawl, error) {
	var crawl sitedex.Crawl
	var startedAt, finishedAt string

	if err := scan(&crawl.ID, &crawl.SeedURL, &crawl.Domain, &crawl.Pages,
		&crawl.Failed, &startedAt, &finishedAt); err != nil {
		return nil, err
	}

	var err error
	if crawl.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if crawl.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &crawl, nil
}
