package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// PostgresContactRepository implements contact message persistence
// against a PostgreSQL database.
type PostgresContactRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresContactRepository creates a new PostgresContactRepository
// using the provided *sql.DB.
func NewPostgresContactRepository(db *sql.DB) *PostgresContactRepository {
	return &PostgresContactRepository{DB: db}
}

// Insert stores a new contact submission.
func (r *PostgresContactRepository) Insert(ctx context.Context, c *models.Contact) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO contacts (id, name, email, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID, c.Name, c.Email, c.Subject, c.Message, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// ListAll fetches every non-deleted contact, newest first.
func (r *PostgresContactRepository) ListAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, subject, message, status, created_at
		FROM contacts WHERE deleted = false ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// UpdateStatus sets the status of the contact with the given id.
// Returns ErrNotFound when the contact does not exist or was deleted.
func (r *PostgresContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE contacts SET status = $2 WHERE id = $1 AND deleted = false
	`, id, status)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	return affectedOrNotFound(res)
}

// SoftDelete marks the contact as deleted; rows are purged later by
// the db cleaner.
func (r *PostgresContactRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE contacts SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return affectedOrNotFound(res)
}
