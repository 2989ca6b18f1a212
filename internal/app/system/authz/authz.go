// internal/app/system/authz/authz.go

// Package authz reads the authenticated subject out of the request context
// and answers role questions. The canonical role model is admin, auditor,
// viewer; RequireRole middleware in the routes files is the enforcement
// point, these helpers serve handlers that branch on role.
package authz

import (
	"net/http"
	"strings"

	"github.com/secassess/assesshub/internal/app/system/auth"
)

// Canonical roles.
const (
	RoleAdmin   = "admin"
	RoleAuditor = "auditor"
	RoleViewer  = "viewer"
)

// AllRoles lists every recognized role.
var AllRoles = []string{RoleAdmin, RoleAuditor, RoleViewer}

// IsValidRole reports whether role names a recognized role.
func IsValidRole(role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, r := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}

// UserCtx returns the subject's role (lowercased), login id, and a found
// flag. ok=false means no authenticated subject is present.
func UserCtx(r *http.Request) (role string, subject string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", false
	}
	return strings.ToLower(user.Role), user.Subject, true
}

// IsAdmin reports whether the current request's subject is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}

// IsAuditor reports whether the current request's subject is an auditor.
func IsAuditor(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == RoleAuditor
}

// HasAnyRole reports whether the current request's subject has any of the
// given roles. Returns false when no subject is present.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
