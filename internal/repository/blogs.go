package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/princearya108/foodlab-portal/internal/models"
)

// PostgresBlogRepository implements blog post persistence against a
// PostgreSQL database.
type PostgresBlogRepository struct {
	DB *sql.DB
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository using
// the provided *sql.DB.
func NewPostgresBlogRepository(db *sql.DB) *PostgresBlogRepository {
	return &PostgresBlogRepository{DB: db}
}

const blogColumns = `id, title, slug, excerpt, content, category, tags, status, featured_image, author, featured, views, likes, created_at`

func scanBlog(rows interface{ Scan(...any) error }) (models.BlogPost, error) {
	var b models.BlogPost
	err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Category,
		pq.Array(&b.Tags), &b.Status, &b.FeaturedImage, &b.Author, &b.Featured, &b.Views, &b.Likes, &b.CreatedAt)
	return b, err
}

// Insert stores a new blog post. Slug collisions surface as database
// errors for the handler to report.
func (r *PostgresBlogRepository) Insert(ctx context.Context, b *models.BlogPost) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO blogs (id, title, slug, excerpt, content, category, tags, status, featured_image, author, featured, views, likes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Category, pq.Array(b.Tags),
		b.Status, b.FeaturedImage, b.Author, b.Featured, b.Views, b.Likes, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// Update replaces the editable fields of an existing post.
func (r *PostgresBlogRepository) Update(ctx context.Context, b *models.BlogPost) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE blogs SET title = $2, slug = $3, excerpt = $4, content = $5, category = $6,
			tags = $7, status = $8, featured_image = $9, author = $10, featured = $11
		WHERE id = $1 AND deleted = false
	`, b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Category, pq.Array(b.Tags),
		b.Status, b.FeaturedImage, b.Author, b.Featured)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	return affectedOrNotFound(res)
}

// ListAll fetches every non-deleted post regardless of status, newest
// first. Used by the admin dashboard.
func (r *PostgresBlogRepository) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	return r.list(ctx, `
		SELECT `+blogColumns+` FROM blogs WHERE deleted = false ORDER BY created_at DESC
	`)
}

// ListPublished fetches published posts, newest first.
func (r *PostgresBlogRepository) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	return r.list(ctx, `
		SELECT `+blogColumns+` FROM blogs
		WHERE deleted = false AND status = 'published' ORDER BY created_at DESC
	`)
}

// ListFeatured fetches published posts flagged as featured.
func (r *PostgresBlogRepository) ListFeatured(ctx context.Context) ([]models.BlogPost, error) {
	return r.list(ctx, `
		SELECT `+blogColumns+` FROM blogs
		WHERE deleted = false AND status = 'published' AND featured = true
		ORDER BY created_at DESC
	`)
}

func (r *PostgresBlogRepository) list(ctx context.Context, query string) ([]models.BlogPost, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		posts = append(posts, b)
	}
	return posts, rows.Err()
}

// GetBySlug fetches a published post by slug and increments its view
// counter. Returns ErrNotFound for missing, deleted, or unpublished posts.
func (r *PostgresBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	row := r.DB.QueryRowContext(ctx, `
		UPDATE blogs SET views = views + 1
		WHERE slug = $1 AND deleted = false AND status = 'published'
		RETURNING `+blogColumns+`
	`, slug)
	b, err := scanBlog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	return &b, nil
}

// GetByID fetches a non-deleted post by id regardless of status.
func (r *PostgresBlogRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+blogColumns+` FROM blogs WHERE id = $1 AND deleted = false
	`, id)
	b, err := scanBlog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &b, nil
}

// UpdateStatus sets the publication status of the post.
func (r *PostgresBlogRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE blogs SET status = $2 WHERE id = $1 AND deleted = false
	`, id, status)
	if err != nil {
		return fmt.Errorf("update blog status: %w", err)
	}
	return affectedOrNotFound(res)
}

// SoftDelete marks the post as deleted.
func (r *PostgresBlogRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE blogs SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return affectedOrNotFound(res)
}
