package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// PostgresServiceRequestRepository implements service request
// persistence against a PostgreSQL database.
type PostgresServiceRequestRepository struct {
	DB *sql.DB
}

// NewPostgresServiceRequestRepository creates a new
// PostgresServiceRequestRepository using the provided *sql.DB.
func NewPostgresServiceRequestRepository(db *sql.DB) *PostgresServiceRequestRepository {
	return &PostgresServiceRequestRepository{DB: db}
}

// Insert stores a new service request.
func (r *PostgresServiceRequestRepository) Insert(ctx context.Context, s *models.ServiceRequest) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO service_requests (id, name, email, phone, company, service_type, urgency, status, sample_details, requirements, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, s.ID, s.Name, s.Email, s.Phone, s.Company, s.ServiceType, s.Urgency, s.Status, s.SampleDetails, s.Requirements, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert service request: %w", err)
	}
	return nil
}

// ListAll fetches every non-deleted service request, newest first.
func (r *PostgresServiceRequestRepository) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, phone, company, service_type, urgency, status, sample_details, requirements, created_at
		FROM service_requests WHERE deleted = false ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()

	var reqs []models.ServiceRequest
	for rows.Next() {
		var s models.ServiceRequest
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Company, &s.ServiceType,
			&s.Urgency, &s.Status, &s.SampleDetails, &s.Requirements, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		reqs = append(reqs, s)
	}
	return reqs, rows.Err()
}

// UpdateStatus sets the status of the request with the given id.
// Any status from the allowed set may follow any other; there is no
// transition graph.
func (r *PostgresServiceRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE service_requests SET status = $2 WHERE id = $1 AND deleted = false
	`, id, status)
	if err != nil {
		return fmt.Errorf("update service request status: %w", err)
	}
	return affectedOrNotFound(res)
}

// SoftDelete marks the request as deleted.
func (r *PostgresServiceRequestRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE service_requests SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete service request: %w", err)
	}
	return affectedOrNotFound(res)
}
