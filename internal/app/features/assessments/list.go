// internal/app/features/assessments/list.go
package assessments

import (
	"encoding/json"
	"net/http"

	"github.com/secassess/assesshub/internal/app/system/paging"
	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /assessments. Pages are served through the listing
// cache; the cache key covers page, size, and sort, and every write to
// assessments or their items purges it. Rows carry nested items, fetched
// with one $in query for the whole page.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	spec := paging.Parse(r, "-updated_at", "updated_at", "title_ci", "status")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list assessments")
	defer cancel()

	resp, err := h.Cache.GetOrLoad(spec.Key(), func() (listResponse, error) {
		rows, total, err := h.Assessments.List(ctx, spec)
		if err != nil {
			return listResponse{}, err
		}

		ids := make([]primitive.ObjectID, 0, len(rows))
		for _, a := range rows {
			ids = append(ids, a.ID)
		}
		itemsByOwner, err := h.Items.ListByAssessments(ctx, ids)
		if err != nil {
			return listResponse{}, err
		}

		views := make([]assessmentView, 0, len(rows))
		for _, a := range rows {
			views = append(views, toAssessmentView(a, itemsByOwner[a.ID]))
		}

		pages := total / int64(spec.Size)
		if total%int64(spec.Size) != 0 {
			pages++
		}
		return listResponse{
			Assessments:   views,
			Page:          spec.Page,
			Size:          spec.Size,
			TotalElements: total,
			TotalPages:    pages,
		}, nil
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list assessments failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
