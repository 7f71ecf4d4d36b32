package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-analyzer/pkg/jobs"
)

// PostingRepository stores job postings and serves them as a live jobs.Source.
type PostingRepository struct {
	pool  *pgxpool.Pool
	limit int
}

func NewPostingRepository(pool *pgxpool.Pool, limit int) (*PostingRepository, error) {
	if limit <= 0 {
		limit = 5
	}
	r := &PostingRepository{pool: pool, limit: limit}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostingRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_postings (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_job_postings_created ON job_postings(created_at DESC);
`)
	return err
}

// Create inserts a posting and returns its id.
func (r *PostingRepository) Create(ctx context.Context, p jobs.Posting) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx, `
INSERT INTO job_postings (id, title, company, location, url, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, id, strings.TrimSpace(p.Title), p.Company, p.Location, p.URL, p.Description, time.Now().UTC())
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Fetch returns the newest postings whose title contains role and, when given,
// whose location contains location (case-insensitive).
func (r *PostingRepository) Fetch(ctx context.Context, role, location string) ([]jobs.Posting, error) {
	rows, err := r.pool.Query(ctx, `
SELECT title, company, location, url, description
FROM job_postings
WHERE title ILIKE '%' || $1 || '%'
  AND ($2 = '' OR location ILIKE '%' || $2 || '%')
ORDER BY created_at DESC
LIMIT $3
`, escapeLike(role), escapeLike(location), r.limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (jobs.Posting, error) {
		var p jobs.Posting
		err := row.Scan(&p.Title, &p.Company, &p.Location, &p.URL, &p.Description)
		return p, err
	})
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(s))
}

var _ jobs.Source = (*PostingRepository)(nil)
