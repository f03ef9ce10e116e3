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

// PostgresTeamRepository implements team member persistence against a
// PostgreSQL database.
type PostgresTeamRepository struct {
	DB *sql.DB
}

// NewPostgresTeamRepository creates a new PostgresTeamRepository using
// the provided *sql.DB.
func NewPostgresTeamRepository(db *sql.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{DB: db}
}

const teamColumns = `id, name, position, department, email, phone, bio, education, experience,
	specialization, display_order, is_active, profile_image, social_links, achievements, publications, created_at`

func scanTeamMember(row interface{ Scan(...any) error }) (models.TeamMember, error) {
	var (
		m      models.TeamMember
		social []byte
	)
	err := row.Scan(&m.ID, &m.Name, &m.Position, &m.Department, &m.Email, &m.Phone,
		&m.Bio, &m.Education, &m.Experience, &m.Specialization, &m.DisplayOrder,
		&m.IsActive, &m.ProfileImage, &social, pq.Array(&m.Achievements),
		pq.Array(&m.Publications), &m.CreatedAt)
	if err != nil {
		return m, err
	}
	if err := jsonbScan(social, &m.SocialLinks); err != nil {
		return m, err
	}
	return m, nil
}

// Insert stores a new team member profile.
func (r *PostgresTeamRepository) Insert(ctx context.Context, m *models.TeamMember) error {
	social, err := jsonbValue(m.SocialLinks)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO team_members (id, name, position, department, email, phone, bio, education,
			experience, specialization, display_order, is_active, profile_image, social_links,
			achievements, publications, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, m.ID, m.Name, m.Position, m.Department, m.Email, m.Phone, m.Bio, m.Education,
		m.Experience, m.Specialization, m.DisplayOrder, m.IsActive, m.ProfileImage,
		social, pq.Array(m.Achievements), pq.Array(m.Publications), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

// Update replaces the editable fields of an existing profile.
func (r *PostgresTeamRepository) Update(ctx context.Context, m *models.TeamMember) error {
	social, err := jsonbValue(m.SocialLinks)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, `
		UPDATE team_members SET name = $2, position = $3, department = $4, email = $5,
			phone = $6, bio = $7, education = $8, experience = $9, specialization = $10,
			display_order = $11, is_active = $12, profile_image = $13, social_links = $14,
			achievements = $15, publications = $16
		WHERE id = $1 AND deleted = false
	`, m.ID, m.Name, m.Position, m.Department, m.Email, m.Phone, m.Bio, m.Education,
		m.Experience, m.Specialization, m.DisplayOrder, m.IsActive, m.ProfileImage,
		social, pq.Array(m.Achievements), pq.Array(m.Publications))
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return affectedOrNotFound(res)
}

// ListAll fetches every non-deleted profile ordered for the dashboard.
func (r *PostgresTeamRepository) ListAll(ctx context.Context) ([]models.TeamMember, error) {
	return r.list(ctx, `
		SELECT `+teamColumns+` FROM team_members
		WHERE deleted = false ORDER BY display_order, name
	`)
}

// ListActive fetches the publicly visible profiles: active members
// ordered by display order.
func (r *PostgresTeamRepository) ListActive(ctx context.Context) ([]models.TeamMember, error) {
	return r.list(ctx, `
		SELECT `+teamColumns+` FROM team_members
		WHERE deleted = false AND is_active = true ORDER BY display_order, name
	`)
}

func (r *PostgresTeamRepository) list(ctx context.Context, query string) ([]models.TeamMember, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetByID fetches a non-deleted profile by id.
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+teamColumns+` FROM team_members WHERE id = $1 AND deleted = false
	`, id)
	m, err := scanTeamMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

// SetActive toggles public visibility of the profile.
func (r *PostgresTeamRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE team_members SET is_active = $2 WHERE id = $1 AND deleted = false
	`, id, active)
	if err != nil {
		return fmt.Errorf("update team member status: %w", err)
	}
	return affectedOrNotFound(res)
}

// SoftDelete marks the profile as deleted.
func (r *PostgresTeamRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE team_members SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return affectedOrNotFound(res)
}
