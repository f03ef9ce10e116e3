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

// PostgresEquipmentRepository implements equipment record persistence
// against a PostgreSQL database.
type PostgresEquipmentRepository struct {
	DB *sql.DB
}

// NewPostgresEquipmentRepository creates a new
// PostgresEquipmentRepository using the provided *sql.DB.
func NewPostgresEquipmentRepository(db *sql.DB) *PostgresEquipmentRepository {
	return &PostgresEquipmentRepository{DB: db}
}

const equipmentColumns = `id, name, model, manufacturer, category, operating_status, location,
	responsible_person, cost, equipment_images, manuals, maintenance_schedule,
	display_order, is_public_display, featured, created_at`

func scanEquipment(row interface{ Scan(...any) error }) (models.Equipment, error) {
	var (
		e                           models.Equipment
		location, person, cost, sch []byte
	)
	err := row.Scan(&e.ID, &e.Name, &e.Model, &e.Manufacturer, &e.Category,
		&e.OperatingStatus, &location, &person, &cost, pq.Array(&e.EquipmentImages),
		pq.Array(&e.Manuals), &sch, &e.DisplayOrder, &e.IsPublicDisplay, &e.Featured, &e.CreatedAt)
	if err != nil {
		return e, err
	}
	if err := jsonbScan(location, &e.Location); err != nil {
		return e, err
	}
	if err := jsonbScan(person, &e.ResponsiblePerson); err != nil {
		return e, err
	}
	if err := jsonbScan(cost, &e.Cost); err != nil {
		return e, err
	}
	if err := jsonbScan(sch, &e.MaintenanceSchedule); err != nil {
		return e, err
	}
	return e, nil
}

// Insert stores a new equipment record.
func (r *PostgresEquipmentRepository) Insert(ctx context.Context, e *models.Equipment) error {
	location, err := jsonbValue(e.Location)
	if err != nil {
		return err
	}
	person, err := jsonbValue(e.ResponsiblePerson)
	if err != nil {
		return err
	}
	cost, err := jsonbValue(e.Cost)
	if err != nil {
		return err
	}
	schedule, err := jsonbValue(e.MaintenanceSchedule)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO equipment (id, name, model, manufacturer, category, operating_status,
			location, responsible_person, cost, equipment_images, manuals, maintenance_schedule,
			display_order, is_public_display, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, e.ID, e.Name, e.Model, e.Manufacturer, e.Category, e.OperatingStatus,
		location, person, cost, pq.Array(e.EquipmentImages), pq.Array(e.Manuals),
		schedule, e.DisplayOrder, e.IsPublicDisplay, e.Featured, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// Update replaces the editable fields of an existing record.
func (r *PostgresEquipmentRepository) Update(ctx context.Context, e *models.Equipment) error {
	location, err := jsonbValue(e.Location)
	if err != nil {
		return err
	}
	person, err := jsonbValue(e.ResponsiblePerson)
	if err != nil {
		return err
	}
	cost, err := jsonbValue(e.Cost)
	if err != nil {
		return err
	}
	schedule, err := jsonbValue(e.MaintenanceSchedule)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, `
		UPDATE equipment SET name = $2, model = $3, manufacturer = $4, category = $5,
			operating_status = $6, location = $7, responsible_person = $8, cost = $9,
			equipment_images = $10, manuals = $11, maintenance_schedule = $12,
			display_order = $13, is_public_display = $14, featured = $15
		WHERE id = $1 AND deleted = false
	`, e.ID, e.Name, e.Model, e.Manufacturer, e.Category, e.OperatingStatus,
		location, person, cost, pq.Array(e.EquipmentImages), pq.Array(e.Manuals),
		schedule, e.DisplayOrder, e.IsPublicDisplay, e.Featured)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	return affectedOrNotFound(res)
}

// ListAll fetches every non-deleted record for the dashboard.
func (r *PostgresEquipmentRepository) ListAll(ctx context.Context) ([]models.Equipment, error) {
	return r.list(ctx, `
		SELECT `+equipmentColumns+` FROM equipment
		WHERE deleted = false ORDER BY display_order, name
	`)
}

// ListPublic fetches the publicly displayed records ordered by display
// order.
func (r *PostgresEquipmentRepository) ListPublic(ctx context.Context) ([]models.Equipment, error) {
	return r.list(ctx, `
		SELECT `+equipmentColumns+` FROM equipment
		WHERE deleted = false AND is_public_display = true ORDER BY display_order, name
	`)
}

func (r *PostgresEquipmentRepository) list(ctx context.Context, query string) ([]models.Equipment, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var items []models.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// GetByID fetches a non-deleted record by id.
func (r *PostgresEquipmentRepository) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+equipmentColumns+` FROM equipment WHERE id = $1 AND deleted = false
	`, id)
	e, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &e, nil
}

// UpdateStatus sets the operating status of the record.
func (r *PostgresEquipmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE equipment SET operating_status = $2 WHERE id = $1 AND deleted = false
	`, id, status)
	if err != nil {
		return fmt.Errorf("update equipment status: %w", err)
	}
	return affectedOrNotFound(res)
}

// SoftDelete marks the record as deleted.
func (r *PostgresEquipmentRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE equipment SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return affectedOrNotFound(res)
}
