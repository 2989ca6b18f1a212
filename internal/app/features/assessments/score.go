// internal/app/features/assessments/score.go
package assessments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	"github.com/secassess/assesshub/internal/app/system/htmlsanitize"
	"github.com/secassess/assesshub/internal/app/system/inputval"
	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type scoreRequest struct {
	Score *int   `json:"score"`
	Notes string `json:"notes"`
}

// HandleScore handles PATCH /assessments/{id}/items/{itemID}/score. Notes
// are sanitized before storage; score and notes never touch the criterion
// fields on the item.
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.BadRequest(w, r, "invalid assessment id")
		return
	}
	itemID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "itemID"))
	if err != nil {
		apierr.BadRequest(w, r, "invalid item id")
		return
	}

	var body scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.BadRequest(w, r, "malformed request body")
		return
	}

	fields := map[string]string{}
	if body.Score == nil {
		fields["score"] = "is required"
	} else if !inputval.IsValidScore(*body.Score) {
		fields["score"] = "must be between 0 and 10"
	}
	if !inputval.IsValidNotes(body.Notes) {
		fields["notes"] = "is too long"
	}
	if len(fields) > 0 {
		apierr.FieldErrors(w, r, fields)
		return
	}

	notes := htmlsanitize.Sanitize(body.Notes)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "score item")
	defer cancel()

	item, err := h.Items.SetScore(ctx, assessmentID, itemID, *body.Score, notes)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.NotFound(w, r, "Item not found with ID: "+itemID.Hex())
			return
		}
		h.ErrLog.LogServerError(w, r, "score item failed", err)
		return
	}

	// Listing rows embed items, so a score change invalidates cached pages.
	h.Cache.Purge()
	h.Log.Info("item scored",
		zap.String("assessment_id", assessmentID.Hex()),
		zap.String("item_id", itemID.Hex()),
		zap.Int("score", *body.Score))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toItemView(item))
}
