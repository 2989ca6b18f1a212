// internal/app/features/assessments/view.go
package assessments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeView handles GET /assessments/{id} and returns the assessment with
// its items.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.BadRequest(w, r, "invalid assessment id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "view assessment")
	defer cancel()

	a, err := h.Assessments.GetByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.NotFound(w, r, "Assessment not found with ID: "+assessmentID.Hex())
			return
		}
		h.ErrLog.LogServerError(w, r, "load assessment failed", err)
		return
	}

	items, err := h.Items.ListByAssessment(ctx, assessmentID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load items failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toAssessmentView(a, items))
}
