// Package upload persists multipart file uploads under a configured
// directory and hands back relative paths for storage in entity records.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize caps individual uploaded files at 10 MiB.
const MaxFileSize = 10 << 20

// ErrFileTooLarge is returned when an uploaded file exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("file too large")

// allowedExtensions maps a form field name to the file extensions it accepts.
var allowedExtensions = map[string][]string{
	"resume":          {".pdf", ".doc", ".docx"},
	"featuredImage":   {".jpg", ".jpeg", ".png", ".webp"},
	"profileImage":    {".jpg", ".jpeg", ".png", ".webp"},
	"equipmentImages": {".jpg", ".jpeg", ".png", ".webp"},
	"manuals":         {".pdf"},
}

// Saver writes uploaded files to disk.
type Saver struct {
	// Dir is the root uploads directory.
	Dir string
}

// NewSaver creates the uploads directory if needed and returns a Saver.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Saver{Dir: dir}, nil
}

// Save stores the uploaded file for the given form field and returns
// the relative path to record on the entity. The extension must be on
// the field's allow-list and the file must not exceed MaxFileSize.
func (s *Saver) Save(field string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extensionAllowed(field, ext) {
		return "", fmt.Errorf("file type %q not allowed for %s", ext, field)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dstPath := filepath.Join(s.Dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1)); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

func extensionAllowed(field, ext string) bool {
	allowed, ok := allowedExtensions[field]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}
