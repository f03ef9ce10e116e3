package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/princearya108/foodlab-portal/internal/middleware"
	"github.com/princearya108/foodlab-portal/internal/models"
	"github.com/princearya108/foodlab-portal/internal/service"
)

// withClaims attaches verified admin claims to the request, the way the
// auth middleware does for authenticated requests.
func withClaims(req *http.Request) *http.Request {
	claims := &service.Claims{Username: "root", Email: "root@lab.test", Role: "admin"}
	return req.WithContext(middleware.WithAdmin(req.Context(), claims))
}

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	admin      *models.Admin
	token      string
	loginErr   error
	profileErr error
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*models.Admin, string, error) {
	return f.admin, f.token, f.loginErr
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, username, email, currentPassword, newPassword string) error {
	return f.profileErr
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
		wantSuccess  bool
	}{
		{
			name:         "invalid JSON",
			body:         `not a json`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing password",
			body:         `{"username":"root"}`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad credentials",
			body:         `{"username":"root","password":"wrong"}`,
			service:      &fakeAuthService{loginErr: service.ErrInvalidCredentials},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "service failure",
			body:         `{"username":"root","password":"secret"}`,
			service:      &fakeAuthService{loginErr: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "success",
			body: `{"username":"root","password":"secret"}`,
			service: &fakeAuthService{
				admin: &models.Admin{ID: "a1", Username: "root", Email: "root@lab.test", Role: "admin"},
				token: "tok123",
			},
			expectedCode: http.StatusOK,
			wantSuccess:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Login(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}

			var env struct {
				Success bool `json:"success"`
				Data    struct {
					Token string `json:"token"`
					Admin struct {
						Username string `json:"username"`
					} `json:"admin"`
				} `json:"data"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if env.Success != tt.wantSuccess {
				t.Errorf("success = %v; want %v", env.Success, tt.wantSuccess)
			}
			if tt.wantSuccess && (env.Data.Token != "tok123" || env.Data.Admin.Username != "root") {
				t.Errorf("unexpected payload: %+v", env.Data)
			}
		})
	}
}

func TestAuthHandler_Verify_NoClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/auth/verify", nil)
	h := &AuthHandler{AuthService: &fakeAuthService{}}
	h.Verify(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without claims in context, got %d", rec.Code)
	}
}

func TestAuthHandler_UpdateProfile_PasswordOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"currentPassword":"old","newPassword":"new"}`)
	req := withClaims(httptest.NewRequest("PUT", "/api/auth/profile", body))
	h := &AuthHandler{AuthService: &fakeAuthService{}}
	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for a password change without email, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"email":"x@lab.test","currentPassword":"bad","newPassword":"new"}`)
	req := withClaims(httptest.NewRequest("PUT", "/api/auth/profile", body))
	h := &AuthHandler{AuthService: &fakeAuthService{profileErr: service.ErrInvalidCredentials}}
	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong current password, got %d", rec.Code)
	}
}
