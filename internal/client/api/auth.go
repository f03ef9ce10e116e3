package api

import (
	"context"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// LoginResult carries the credentials returned by a successful login.
type LoginResult struct {
	Admin *models.Admin `json:"admin"`
	Token string        `json:"token"`
}

// Login exchanges a username and password for a token and admin record.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.Post(ctx, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Verify checks the current token against the backend. A nil error
// means the token is valid.
func (c *Client) Verify(ctx context.Context) error {
	return c.Get(ctx, "/api/auth/verify", nil)
}

// UpdateProfile changes the admin's email and, when newPassword is
// set, the password. The current password is required by the backend
// for any password change.
func (c *Client) UpdateProfile(ctx context.Context, email, currentPassword, newPassword string) error {
	body := map[string]string{
		"email":           email,
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.Put(ctx, "/api/auth/profile", body, nil)
}
