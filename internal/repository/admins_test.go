package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/princearya108/foodlab-portal/internal/models"
)

func setupAdminMock(t *testing.T) (*PostgresAdminRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresAdminRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, cleanup := setupAdminMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "role", "password_hash"}).
		AddRow("a1", "root", "root@lab.test", "admin", []byte("hash"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, role, password_hash FROM admins WHERE username = $1`)).
		WithArgs("root").
		WillReturnRows(rows)

	admin, err := repo.GetByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != "a1" || admin.Role != "admin" {
		t.Errorf("unexpected admin: %+v", admin)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAdminMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, role, password_hash FROM admins WHERE username = $1`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role", "password_hash"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdateProfile_KeepPassword(t *testing.T) {
	repo, mock, cleanup := setupAdminMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE admins SET email = $2 WHERE id = $1`)).
		WithArgs("a1", "new@lab.test").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateProfile(context.Background(), "a1", "new@lab.test", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock, cleanup := setupAdminMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE admins SET email = $2, password_hash = $3 WHERE id = $1`)).
		WithArgs("missing", "x@lab.test", []byte("h")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), "missing", "x@lab.test", []byte("h"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	repo, mock, cleanup := setupAdminMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO admins (id, username, email, role, password_hash)`)).
		WithArgs("a1", "root", "root@lab.test", "admin", []byte("hash")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.EnsureAdmin(context.Background(), &models.Admin{
		ID: "a1", Username: "root", Email: "root@lab.test", Role: "admin", PasswordHash: []byte("hash"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
