// internal/app/features/assessments/routes.go
package assessments

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/system/auth"
	"github.com/secassess/assesshub/internal/app/system/authz"
	"github.com/secassess/assesshub/internal/app/system/ratelimit"
)

// Writes per subject per minute across copy, status, and scoring. Scoring a
// long checklist item by item stays under this comfortably.
const writeBudget = 120

// Routes mounts all Assessment routes under the base path (typically
// "/api/v1/assessments" from bootstrap).
func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	// Read endpoints: any authenticated role.
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
	})

	// Mutation endpoints: admins and auditors only, rate limited.
	writeLimiter := ratelimit.New(writeBudget, time.Minute)
	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireSignedIn)
		pr.Use(tm.RequireRole(authz.RoleAdmin, authz.RoleAuditor))
		pr.Use(writeLimiter.Middleware)

		pr.Post("/{id}/copy-from-template", h.HandleCopyFromTemplate)
		pr.Patch("/{id}/status", h.HandleStatusChange)
		pr.Patch("/{id}/items/{itemID}/score", h.HandleScore)
	})

	return r
}
