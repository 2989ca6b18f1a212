package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/secassess/assesshub/internal/app/system/auth"
	"go.uber.org/zap"
)

func newManager(t *testing.T, ttl time.Duration) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("0123456789abcdef0123456789abcdef", "assesshub-test", ttl, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}
	return tm
}

func TestIssueAndParse(t *testing.T) {
	tm := newManager(t, time.Hour)

	token, err := tm.Issue("auditor@example.com", "Avery Auditor", "AUDITOR")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	user, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if user.Subject != "auditor@example.com" {
		t.Errorf("subject = %q", user.Subject)
	}
	if user.Role != "auditor" {
		t.Errorf("role = %q, want lowercased auditor", user.Role)
	}
}

func TestParse_RejectsExpired(t *testing.T) {
	tm := newManager(t, -time.Minute)

	token, err := tm.Issue("user@example.com", "", "viewer")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := tm.Parse(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestParse_RejectsWrongKey(t *testing.T) {
	tm := newManager(t, time.Hour)
	other, err := auth.NewTokenManager("ffffffffffffffffffffffffffffffff", "assesshub-test", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager failed: %v", err)
	}

	token, err := other.Issue("user@example.com", "", "viewer")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := tm.Parse(token); err == nil {
		t.Error("expected token signed with another key to be rejected")
	}
}

func TestNewTokenManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewTokenManager("", "iss", time.Hour, zap.NewNop()); err == nil {
		t.Error("expected error for empty signing key")
	}
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestMiddleware_ValidToken(t *testing.T) {
	tm := newManager(t, time.Hour)
	token, _ := tm.Issue("admin@example.com", "Ada Admin", "admin")

	var seen *auth.TokenUser
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.CurrentUser(r)
	})
	h := tm.LoadTokenUser(tm.RequireSignedIn(inner))

	req := httptest.NewRequest("GET", "/api/v1/assessments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen == nil || seen.Subject != "admin@example.com" {
		t.Fatalf("token user not loaded: %+v", seen)
	}
}

func TestMiddleware_MissingToken401(t *testing.T) {
	tm := newManager(t, time.Hour)
	inner, called := okHandler()
	h := tm.LoadTokenUser(tm.RequireSignedIn(inner))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/assessments", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if *called {
		t.Error("handler must not run without a token")
	}
}

func TestMiddleware_GarbageToken401(t *testing.T) {
	tm := newManager(t, time.Hour)
	inner, called := okHandler()
	h := tm.LoadTokenUser(tm.RequireSignedIn(inner))

	req := httptest.NewRequest("GET", "/api/v1/assessments", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if *called {
		t.Error("handler must not run with a garbage token")
	}
}

func TestRequireRole(t *testing.T) {
	tm := newManager(t, time.Hour)

	tests := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"admin allowed", "admin", []string{"admin", "auditor"}, http.StatusOK},
		{"auditor allowed", "auditor", []string{"admin", "auditor"}, http.StatusOK},
		{"viewer forbidden", "viewer", []string{"admin", "auditor"}, http.StatusForbidden},
		{"case insensitive", "ADMIN", []string{"admin"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, _ := okHandler()
			h := tm.RequireRole(tt.allowed...)(inner)

			req := httptest.NewRequest("GET", "/", nil)
			req = auth.WithTestUser(req, &auth.TokenUser{Subject: "u@example.com", Role: tt.role})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireRole_NoUser401(t *testing.T) {
	tm := newManager(t, time.Hour)
	inner, _ := okHandler()
	h := tm.RequireRole("admin")(inner)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
