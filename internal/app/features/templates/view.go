// internal/app/features/templates/view.go
package templates

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type templateView struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	Title          string          `json:"title"`
	Version        string          `json:"version"`
	Status         string          `json:"status"`
	Criteria       []criterionView `json:"criteria"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type criterionView struct {
	ID       string  `json:"id"`
	Section  string  `json:"section"`
	Text     string  `json:"text"`
	Severity string  `json:"severity"`
	Weight   float64 `json:"weight"`
}

func toTemplateView(tpl models.Template) templateView {
	criteria := make([]criterionView, 0, len(tpl.Criteria))
	for _, c := range tpl.Criteria {
		criteria = append(criteria, criterionView{
			ID:       c.ID.Hex(),
			Section:  c.Section,
			Text:     c.Text,
			Severity: c.Severity,
			Weight:   c.Weight,
		})
	}
	return templateView{
		ID:             tpl.ID.Hex(),
		OrganizationID: tpl.OrganizationID.Hex(),
		Title:          tpl.Title,
		Version:        tpl.Version,
		Status:         tpl.Status,
		Criteria:       criteria,
		CreatedAt:      tpl.CreatedAt,
		UpdatedAt:      tpl.UpdatedAt,
	}
}

// ServeView handles GET /templates/{id}. Criteria are returned in authored
// order.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.BadRequest(w, r, "invalid template id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "view template")
	defer cancel()

	tpl, err := h.Templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.NotFound(w, r, "Template not found with ID: "+id.Hex())
			return
		}
		h.ErrLog.LogServerError(w, r, "load template failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toTemplateView(tpl))
}
