package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/secassess/assesshub/internal/app/system/auth"
	"github.com/secassess/assesshub/internal/app/system/authz"
)

// TestUser represents token subject data for testing HTTP handlers.
type TestUser struct {
	Subject string
	Name    string
	Role    string
}

// AdminUser returns a TestUser with the admin role.
func AdminUser() TestUser {
	return TestUser{
		Subject: "admin@test.com",
		Name:    "Test Admin",
		Role:    authz.RoleAdmin,
	}
}

// AuditorUser returns a TestUser with the auditor role.
func AuditorUser() TestUser {
	return TestUser{
		Subject: "auditor@test.com",
		Name:    "Test Auditor",
		Role:    authz.RoleAuditor,
	}
}

// ViewerUser returns a TestUser with the viewer role.
func ViewerUser() TestUser {
	return TestUser{
		Subject: "viewer@test.com",
		Name:    "Test Viewer",
		Role:    authz.RoleViewer,
	}
}

// WithUser adds a user to the request context for testing authenticated
// handlers. This bypasses the token middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.TokenUser{
		Subject: user.Subject,
		Name:    user.Name,
		Role:    user.Role,
	})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request with a JSON body.
func NewJSONRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}
