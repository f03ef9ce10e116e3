package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// PostgresInternshipRepository implements internship application
// persistence against a PostgreSQL database.
type PostgresInternshipRepository struct {
	DB *sql.DB
}

// NewPostgresInternshipRepository creates a new
// PostgresInternshipRepository using the provided *sql.DB.
func NewPostgresInternshipRepository(db *sql.DB) *PostgresInternshipRepository {
	return &PostgresInternshipRepository{DB: db}
}

// Insert stores a new internship application.
func (r *PostgresInternshipRepository) Insert(ctx context.Context, a *models.InternshipApplication) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO internships (id, full_name, email, phone, education, field, duration, status, resume, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, a.ID, a.FullName, a.Email, a.Phone, a.Education, a.Field, a.Duration, a.Status, a.Resume, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert internship: %w", err)
	}
	return nil
}

// ListAll fetches every non-deleted application, newest first.
func (r *PostgresInternshipRepository) ListAll(ctx context.Context) ([]models.InternshipApplication, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, full_name, email, phone, education, field, duration, status, resume, created_at
		FROM internships WHERE deleted = false ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	defer rows.Close()

	var apps []models.InternshipApplication
	for rows.Next() {
		var a models.InternshipApplication
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Education,
			&a.Field, &a.Duration, &a.Status, &a.Resume, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus sets the status of the application with the given id.
func (r *PostgresInternshipRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE internships SET status = $2 WHERE id = $1 AND deleted = false
	`, id, status)
	if err != nil {
		return fmt.Errorf("update internship status: %w", err)
	}
	return affectedOrNotFound(res)
}

// SoftDelete marks the application as deleted.
func (r *PostgresInternshipRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE internships SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete internship: %w", err)
	}
	return affectedOrNotFound(res)
}
