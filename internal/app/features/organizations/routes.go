// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/system/auth"
)

// Routes mounts all Organization routes under the base path (typically
// "/api/v1/organizations" from bootstrap).
func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{slug}", h.ServeView)
	})

	return r
}
