// Package http provides HTTP handlers for the portal API: admin
// authentication, public reads and submissions, and the admin
// dashboard endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/princearya108/foodlab-portal/internal/middleware"
	"github.com/princearya108/foodlab-portal/internal/models"
	"github.com/princearya108/foodlab-portal/internal/service"
)

// AuthService defines the authentication operations required by the
// HTTP handlers.
type AuthService interface {
	// Login checks credentials and returns the admin with a signed token.
	Login(ctx context.Context, username, password string) (*models.Admin, string, error)
	// UpdateProfile changes the email and optionally the password.
	UpdateProfile(ctx context.Context, username, email, currentPassword, newPassword string) error
}

// AuthHandler handles HTTP requests for admin login, token
// verification, and profile updates.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// LoginRequest represents the JSON payload for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. On success the envelope data
// carries the admin record and a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	admin, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"admin": admin,
		"token": token,
	})
}

// Verify handles GET /api/auth/verify. The bearer middleware has
// already validated the token; this just echoes the identity so the
// client guard can confirm the session.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetAdminFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"username": claims.Username,
		"email":    claims.Email,
		"role":     claims.Role,
	})
}

// ProfileRequest represents the JSON payload for profile updates.
type ProfileRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfile handles PUT /api/auth/profile for the authenticated admin.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetAdminFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" && req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	err := h.AuthService.UpdateProfile(r.Context(), claims.Username, req.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "current password is incorrect")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	writeData(w, http.StatusOK, map[string]string{"status": "updated"})
}
