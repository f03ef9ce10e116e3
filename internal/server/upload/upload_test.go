package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartFile(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestSave_AllowedExtension(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}

	fh := multipartFile(t, "resume", "cv.pdf", "%PDF-1.4 fake")
	path, err := saver.Save("resume", fh)
	if err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/") || !strings.HasSuffix(path, ".pdf") {
		t.Errorf("unexpected path %q", path)
	}

	onDisk := filepath.Join(saver.Dir, strings.TrimPrefix(path, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestSave_RejectedExtension(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}

	fh := multipartFile(t, "resume", "cv.exe", "MZ")
	if _, err := saver.Save("resume", fh); err == nil {
		t.Fatal("expected error for disallowed extension")
	}
}

func TestSave_UnknownField(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}

	fh := multipartFile(t, "other", "a.pdf", "x")
	if _, err := saver.Save("other", fh); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
