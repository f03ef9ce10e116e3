// Package repository provides PostgreSQL persistence for the portal
// entities. All admin deletes are soft deletes; purging is handled by
// the db cleaner.
package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a row does not exist or is soft-deleted.
var ErrNotFound = errors.New("record not found")

// jsonbValue marshals v for storage in a jsonb column.
func jsonbValue(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// jsonbScan unmarshals a jsonb column into dst. Empty input leaves dst
// at its zero value.
func jsonbScan(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// affectedOrNotFound converts a zero-row update into ErrNotFound.
func affectedOrNotFound(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
