package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shortloop/shortloop/internal/shortener"
)

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
//
// Expected schema:
//
//	CREATE TABLE links (
//	    code         TEXT PRIMARY KEY,
//	    original_url TEXT NOT NULL,
//	    category     TEXT NOT NULL DEFAULT 'Uncategorized',
//	    clicks       BIGINT NOT NULL DEFAULT 0,
//	    created_at   TIMESTAMPTZ NOT NULL,
//	    expires_at   TIMESTAMPTZ
//	);
//	CREATE INDEX links_expires_at_idx ON links (expires_at) WHERE expires_at IS NOT NULL;
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed link store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Save(ctx context.Context, link *shortener.Link) error {
	query := `
		INSERT INTO links (code, original_url, category, clicks, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO NOTHING
	`

	tag, err := p.pool.Exec(ctx, query,
		string(link.Code),
		link.OriginalURL,
		link.Category,
		link.Clicks,
		link.CreatedAt,
		link.ExpiresAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrConflict
	}

	return nil
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Link, error) {
	query := `
		SELECT code, original_url, category, clicks, created_at, expires_at
		FROM links
		WHERE code = $1
	`

	var link shortener.Link

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(
		&link.Code,
		&link.OriginalURL,
		&link.Category,
		&link.Clicks,
		&link.CreatedAt,
		&link.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &link, nil
}

func (p *PostgresStore) IncrementClicks(ctx context.Context, code shortener.Code) error {
	query := `UPDATE links SET clicks = clicks + 1 WHERE code = $1`

	tag, err := p.pool.Exec(ctx, query, string(code))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrNotFound
	}

	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, code shortener.Code) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM links WHERE code = $1`, string(code))

	return err
}

func (p *PostgresStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM links WHERE expires_at IS NOT NULL AND expires_at <= $1`

	tag, err := p.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
