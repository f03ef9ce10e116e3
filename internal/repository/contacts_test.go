package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/princearya108/foodlab-portal/internal/models"
)

func setupContactMock(t *testing.T) (*PostgresContactRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresContactRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestContactInsert(t *testing.T) {
	repo, mock, cleanup := setupContactMock(t)
	defer cleanup()

	now := time.Now()
	c := &models.Contact{
		ID: "c1", Name: "Alice", Email: "a@x.com",
		Subject: "Testing", Message: "hello", Status: "new", CreatedAt: now,
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contacts (id, name, email, subject, message, status, created_at)`)).
		WithArgs("c1", "Alice", "a@x.com", "Testing", "hello", "new", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContactListAll(t *testing.T) {
	repo, mock, cleanup := setupContactMock(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at"}).
		AddRow("c1", "Alice", "a@x.com", "", "hi", "new", now).
		AddRow("c2", "Bob", "b@x.com", "Quote", "hello", "resolved", now)
	mock.ExpectQuery(`SELECT id, name, email, subject, message, status, created_at`).
		WillReturnRows(rows)

	contacts, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Name != "Alice" || contacts[1].Status != "resolved" {
		t.Errorf("unexpected contacts: %+v", contacts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContactUpdateStatus(t *testing.T) {
	repo, mock, cleanup := setupContactMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contacts SET status = $2 WHERE id = $1 AND deleted = false`)).
		WithArgs("c1", "resolved").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), "c1", "resolved"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContactUpdateStatus_NotFound(t *testing.T) {
	repo, mock, cleanup := setupContactMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contacts SET status = $2 WHERE id = $1 AND deleted = false`)).
		WithArgs("missing", "resolved").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", "resolved")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestContactSoftDelete(t *testing.T) {
	repo, mock, cleanup := setupContactMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contacts SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false`)).
		WithArgs("c1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDelete(context.Background(), "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
