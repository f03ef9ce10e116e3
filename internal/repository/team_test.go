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

func setupTeamMock(t *testing.T) (*PostgresTeamRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresTeamRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func teamRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{
		"id", "name", "position", "department", "email", "phone", "bio", "education",
		"experience", "specialization", "display_order", "is_active", "profile_image",
		"social_links", "achievements", "publications", "created_at",
	})
}

func TestTeamInsert(t *testing.T) {
	repo, mock, cleanup := setupTeamMock(t)
	defer cleanup()

	now := time.Now()
	m := &models.TeamMember{
		ID: "m1", Name: "Dr. Alice Verma", Position: "Lead Analyst",
		Department: "Chemical", DisplayOrder: 1, IsActive: true,
		SocialLinks:  models.SocialLinks{LinkedIn: "https://linkedin.com/in/averma"},
		Achievements: []string{"ISO 17025 lead"}, Publications: []string{},
		CreatedAt: now,
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO team_members (id, name, position, department, email, phone, bio, education,`)).
		WithArgs("m1", "Dr. Alice Verma", "Lead Analyst", "Chemical", "", "", "", "",
			"", "", 1, true, "", []byte(`{"linkedin":"https://linkedin.com/in/averma"}`),
			sqlmock.AnyArg(), sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTeamListAll(t *testing.T) {
	repo, mock, cleanup := setupTeamMock(t)
	defer cleanup()

	now := time.Now()
	rows := teamRows(t).
		AddRow("m1", "Dr. Alice Verma", "Lead Analyst", "Chemical", "", "", "", "",
			"", "", 1, true, "", []byte(`{"linkedin":"https://linkedin.com/in/averma"}`),
			"{\"ISO 17025 lead\"}", "{}", now).
		AddRow("m2", "Bob Rao", "Technician", "Biological", "", "", "", "",
			"", "", 2, false, "", nil, "{}", "{}", now)
	mock.ExpectQuery(`FROM team_members\s+WHERE deleted = false ORDER BY display_order, name`).
		WillReturnRows(rows)

	members, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].SocialLinks.LinkedIn != "https://linkedin.com/in/averma" {
		t.Errorf("social links not scanned: %+v", members[0].SocialLinks)
	}
	if len(members[0].Achievements) != 1 || members[0].Achievements[0] != "ISO 17025 lead" {
		t.Errorf("achievements not scanned: %v", members[0].Achievements)
	}
	if members[1].SocialLinks != (models.SocialLinks{}) {
		t.Errorf("null social links should scan to zero value: %+v", members[1].SocialLinks)
	}
	if members[1].IsActive {
		t.Error("expected second member inactive")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTeamGetByID(t *testing.T) {
	repo, mock, cleanup := setupTeamMock(t)
	defer cleanup()

	now := time.Now()
	rows := teamRows(t).
		AddRow("m1", "Dr. Alice Verma", "Lead Analyst", "Chemical", "", "", "", "",
			"", "", 3, false, "", nil, "{}", "{}", now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM team_members WHERE id = $1 AND deleted = false`)).
		WithArgs("m1").
		WillReturnRows(rows)

	m, err := repo.GetByID(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.DisplayOrder != 3 || m.IsActive {
		t.Errorf("unexpected member: %+v", m)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM team_members WHERE id = $1 AND deleted = false`)).
		WithArgs("missing").
		WillReturnRows(teamRows(t))
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTeamUpdate_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTeamMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE team_members SET name = $2`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.TeamMember{ID: "missing", Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTeamSetActive_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTeamMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE team_members SET is_active = $2 WHERE id = $1 AND deleted = false`)).
		WithArgs("missing", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(context.Background(), "missing", false)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
