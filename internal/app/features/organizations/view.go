// internal/app/features/organizations/view.go
package organizations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	"github.com/secassess/assesshub/internal/app/system/inputval"
	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

type projectSummary struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// ServeView handles GET /organizations/{slug} and includes the
// organization's projects.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !inputval.IsValidSlug(slug) {
		apierr.BadRequest(w, r, "invalid organization slug")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "view organization")
	defer cancel()

	org, err := h.Orgs.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.NotFound(w, r, "Organization not found with slug: "+slug)
			return
		}
		h.ErrLog.LogServerError(w, r, "load organization failed", err)
		return
	}

	projects, err := h.Projects.ListByOrganization(ctx, org.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load projects failed", err)
		return
	}

	out := make([]projectSummary, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectSummary{ID: p.ID.Hex(), Code: p.Code, Name: p.Name})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"organization": toOrgSummary(org),
		"projects":     out,
	})
}
