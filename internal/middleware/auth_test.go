package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/princearya108/foodlab-portal/internal/service"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

type fakeVerifier struct {
	claims *service.Claims
	err    error
}

func (f *fakeVerifier) VerifyToken(string) (*service.Claims, error) {
	return f.claims, f.err
}

func TestBearerAuth_NoHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/contacts/admin", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("expected envelope failure body, got %q", rec.Body.String())
	}
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/contacts/admin", nil)
	req.Header.Set("Authorization", "Token abc")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with malformed header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{err: errors.New("expired")})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/contacts/admin", nil)
	req.Header.Set("Authorization", "Bearer bad")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	claims := &service.Claims{Username: "root", Role: "admin"}
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeVerifier{claims: claims})(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/contacts/admin", nil)
	req.Header.Set("Authorization", "Bearer good")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	got := GetAdminFromContext(dummy.ctx)
	if got == nil || got.Username != "root" {
		t.Errorf("expected claims in context, got %+v", got)
	}
}

func TestGetAdminFromContext_Missing(t *testing.T) {
	if got := GetAdminFromContext(context.Background()); got != nil {
		t.Errorf("expected nil claims, got %+v", got)
	}
}
