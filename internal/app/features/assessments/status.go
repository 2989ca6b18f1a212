// internal/app/features/assessments/status.go
package assessments

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"github.com/secassess/assesshub/internal/app/system/txn"
	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type statusRequest struct {
	Status string `json:"status"`
}

// HandleStatusChange handles PATCH /assessments/{id}/status. Entering the
// completed status requires every item to carry a score; open and
// in_progress transitions are unconditional.
func (h *Handler) HandleStatusChange(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.BadRequest(w, r, "invalid assessment id")
		return
	}

	var body statusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.BadRequest(w, r, "malformed request body")
		return
	}
	status := strings.ToLower(strings.TrimSpace(body.Status))
	if !models.IsValidAssessmentStatus(status) {
		apierr.FieldErrors(w, r, map[string]string{"status": "must be one of open, in_progress, completed"})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "status change")
	defer cancel()

	var updated models.Assessment
	err = txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		var err error
		updated, err = h.Svc.UpdateStatus(ctx, assessmentID, status)
		return err
	})
	if err != nil {
		h.ErrLog.Render(w, r, err)
		return
	}

	items, err := h.Items.ListByAssessment(ctx, assessmentID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load items after status change failed", err)
		return
	}

	h.Cache.Purge()
	h.Log.Info("assessment status changed",
		zap.String("assessment_id", assessmentID.Hex()),
		zap.String("status", status))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toAssessmentView(updated, items))
}
