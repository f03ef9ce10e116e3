package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/princearya108/foodlab-portal/internal/models"
)

type mockAdminRepo struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*models.Admin, error)
	UpdateProfileFunc func(ctx context.Context, id, email string, hash []byte) error
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *mockAdminRepo) UpdateProfile(ctx context.Context, id, email string, hash []byte) error {
	return m.UpdateProfileFunc(ctx, id, email, hash)
}

func adminWithPassword(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &models.Admin{
		ID: "a1", Username: "root", Email: "root@lab.test", Role: "admin", PasswordHash: hash,
	}
}

func TestLogin_Success(t *testing.T) {
	admin := adminWithPassword(t, "secret")
	repo := &mockAdminRepo{
		GetByUsernameFunc: func(context.Context, string) (*models.Admin, error) {
			return admin, nil
		},
	}
	svc := NewAuthService(repo, "signing-secret")

	got, token, err := svc.Login(context.Background(), "root", "secret")
	if err != nil {
		t.Fatalf("Login error = %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if got.Username != "root" {
		t.Errorf("unexpected admin: %+v", got)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken error = %v", err)
	}
	if claims.Username != "root" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	admin := adminWithPassword(t, "secret")
	repo := &mockAdminRepo{
		GetByUsernameFunc: func(context.Context, string) (*models.Admin, error) {
			return admin, nil
		},
	}
	svc := NewAuthService(repo, "signing-secret")

	_, _, err := svc.Login(context.Background(), "root", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := &mockAdminRepo{
		GetByUsernameFunc: func(context.Context, string) (*models.Admin, error) {
			return nil, errors.New("not found")
		},
	}
	svc := NewAuthService(repo, "signing-secret")

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	admin := adminWithPassword(t, "secret")
	repo := &mockAdminRepo{
		GetByUsernameFunc: func(context.Context, string) (*models.Admin, error) {
			return admin, nil
		},
	}
	issuer := NewAuthService(repo, "signing-secret")
	verifier := NewAuthService(repo, "different-secret")

	_, token, err := issuer.Login(context.Background(), "root", "secret")
	if err != nil {
		t.Fatalf("Login error = %v", err)
	}
	if _, err := verifier.VerifyToken(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := NewAuthService(&mockAdminRepo{}, "signing-secret")
	if _, err := svc.VerifyToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestUpdateProfile_PasswordChangeRequiresCurrent(t *testing.T) {
	admin := adminWithPassword(t, "secret")
	repo := &mockAdminRepo{
		GetByUsernameFunc: func(context.Context, string) (*models.Admin, error) {
			return admin, nil
		},
		UpdateProfileFunc: func(context.Context, string, string, []byte) error {
			t.Fatal("UpdateProfile should not be reached")
			return nil
		},
	}
	svc := NewAuthService(repo, "signing-secret")

	err := svc.UpdateProfile(context.Background(), "root", "", "wrong", "newpass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateProfile_EmailOnly(t *testing.T) {
	admin := adminWithPassword(t, "secret")
	var gotEmail string
	var gotHash []byte
	repo := &mockAdminRepo{
		GetByUsernameFunc: func(context.Context, string) (*models.Admin, error) {
			return admin, nil
		},
		UpdateProfileFunc: func(_ context.Context, id, email string, hash []byte) error {
			gotEmail, gotHash = email, hash
			return nil
		},
	}
	svc := NewAuthService(repo, "signing-secret")

	if err := svc.UpdateProfile(context.Background(), "root", "new@lab.test", "", ""); err != nil {
		t.Fatalf("UpdateProfile error = %v", err)
	}
	if gotEmail != "new@lab.test" {
		t.Errorf("expected email update, got %q", gotEmail)
	}
	if gotHash != nil {
		t.Errorf("expected no password hash update, got %v", gotHash)
	}
}
