// Package service provides authentication business logic,
// delegating persistence to an AdminRepository.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// ErrInvalidCredentials is returned when a login or password check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminRepository defines the persistence operations
// required by the authentication service.
type AdminRepository interface {
	// GetByUsername returns the admin account with the given username.
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	// UpdateProfile updates the email and, when hash is non-nil, the
	// password hash of the admin with the given id.
	UpdateProfile(ctx context.Context, id, email string, hash []byte) error
}

// Claims is the JWT payload carried by admin access tokens.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService implements admin authentication: credential checks,
// token issue, and token verification.
type AuthService struct {
	repo     AdminRepository
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// NewAuthService constructs an AuthService using the provided
// repository and HS256 signing secret.
func NewAuthService(repo AdminRepository, secret string) *AuthService {
	return &AuthService{
		repo:     repo,
		secret:   []byte(secret),
		issuer:   "foodlab-portal",
		tokenTTL: 24 * time.Hour,
	}
}

// Login checks the username and password and returns the admin record
// together with a signed access token. Returns ErrInvalidCredentials
// when the account is missing or the password does not match.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Admin, string, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := Claims{
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return admin, token, nil
}

// VerifyToken parses and validates an access token, returning its
// claims. Expired, malformed, or mis-signed tokens return an error.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// UpdateProfile changes the email and optionally the password of an
// admin. A password change requires the current password to match.
func (s *AuthService) UpdateProfile(ctx context.Context, username, email, currentPassword, newPassword string) error {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if email == "" {
		email = admin.Email
	}

	var hash []byte
	if newPassword != "" {
		if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(currentPassword)); err != nil {
			return ErrInvalidCredentials
		}
		hash, err = bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
	}
	return s.repo.UpdateProfile(ctx, admin.ID, email, hash)
}

// HashPassword produces a bcrypt hash for bootstrap account seeding.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
