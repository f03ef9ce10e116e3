package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// PostgresAdminRepository implements admin account persistence against
// a PostgreSQL database.
type PostgresAdminRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAdminRepository creates a new PostgresAdminRepository with
// the given database connection.
func NewPostgresAdminRepository(db *sql.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{DB: db}
}

// GetByUsername fetches the admin account with the given username.
// Returns ErrNotFound if no such account exists.
func (r *PostgresAdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, username, email, role, password_hash FROM admins WHERE username = $1
	`, username).Scan(&admin.ID, &admin.Username, &admin.Email, &admin.Role, &admin.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdateProfile updates the email and, when hash is non-nil, the
// password hash of the admin with the given id.
func (r *PostgresAdminRepository) UpdateProfile(ctx context.Context, id, email string, hash []byte) error {
	if hash == nil {
		res, err := r.DB.ExecContext(ctx, `
			UPDATE admins SET email = $2 WHERE id = $1
		`, id, email)
		if err != nil {
			return err
		}
		return affectedOrNotFound(res)
	}
	res, err := r.DB.ExecContext(ctx, `
		UPDATE admins SET email = $2, password_hash = $3 WHERE id = $1
	`, id, email, hash)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

// EnsureAdmin inserts the bootstrap admin account if the username is
// not taken yet.
func (r *PostgresAdminRepository) EnsureAdmin(ctx context.Context, admin *models.Admin) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO admins (id, username, email, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
	`, admin.ID, admin.Username, admin.Email, admin.Role, admin.PasswordHash)
	return err
}
