// Package session persists the admin's token and identity between
// runs of the client.
//
// The token and the user record live in two separate files under the
// session directory, and are always written and removed together. A
// token without a parseable user record, or the reverse, counts as not
// authenticated and wipes the whole session so no half-state survives.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// User is the identity half of a stored session.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Store reads and writes the session files under a directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the token and user record. Both files are replaced; a
// failure writing the second file removes the first so the pair stays
// consistent.
func (s *Store) Save(token string, user *User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600); err != nil {
		_ = os.Remove(filepath.Join(s.dir, tokenFile))
		return fmt.Errorf("failed to write user: %w", err)
	}
	return nil
}

// Read returns the stored token and user. When either half is missing
// or the user record fails to parse, the whole session is cleared and
// both returns are empty.
func (s *Store) Read() (string, *User) {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			_ = s.Clear()
		}
		return "", nil
	}
	token := strings.TrimSpace(string(tokenBytes))

	userBytes, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		_ = s.Clear()
		return "", nil
	}
	var user User
	if err := json.Unmarshal(userBytes, &user); err != nil || token == "" {
		_ = s.Clear()
		return "", nil
	}
	return token, &user
}

// Clear removes both session files. Missing files are not an error.
func (s *Store) Clear() error {
	var errs []error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Token returns the stored token, or "" when not authenticated. It
// applies the same consistency rules as Read.
func (s *Store) Token() string {
	token, _ := s.Read()
	return token
}
