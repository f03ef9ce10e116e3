package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// PostgresPageRepository implements static page persistence against a
// PostgreSQL database.
type PostgresPageRepository struct {
	DB *sql.DB
}

// NewPostgresPageRepository creates a new PostgresPageRepository using
// the provided *sql.DB.
func NewPostgresPageRepository(db *sql.DB) *PostgresPageRepository {
	return &PostgresPageRepository{DB: db}
}

// GetBySlug fetches the page with the given slug. Returns ErrNotFound
// when no such page exists.
func (r *PostgresPageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var p models.Page
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, slug, title, content, updated_at FROM pages WHERE slug = $1
	`, slug).Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	return &p, nil
}

// Upsert creates or replaces the page content for a slug.
func (r *PostgresPageRepository) Upsert(ctx context.Context, p *models.Page) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO pages (id, slug, title, content, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
	`, p.ID, p.Slug, p.Title, p.Content, time.Now())
	if err != nil {
		return fmt.Errorf("upsert page: %w", err)
	}
	return nil
}
