// internal/app/features/organizations/list.go
package organizations

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"github.com/secassess/assesshub/internal/domain/models"
)

type orgSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

func toOrgSummary(org models.Organization) orgSummary {
	return orgSummary{
		ID:        org.ID.Hex(),
		Name:      org.Name,
		Slug:      org.Slug,
		CreatedAt: org.CreatedAt,
	}
}

// ServeList handles GET /organizations.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list organizations")
	defer cancel()

	orgs, err := h.Orgs.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list organizations failed", err)
		return
	}

	out := make([]orgSummary, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, toOrgSummary(org))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"organizations": out})
}
