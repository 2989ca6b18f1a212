// internal/app/features/templates/routes.go
package templates

import (
	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/system/auth"
)

// Routes mounts all Template routes under the base path (typically
// "/api/v1/templates" from bootstrap).
func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireSignedIn)

		pr.Get("/{id}", h.ServeView)
	})

	return r
}
