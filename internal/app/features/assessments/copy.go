// internal/app/features/assessments/copy.go
package assessments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/app/core"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	"github.com/secassess/assesshub/internal/app/system/inputval"
	"github.com/secassess/assesshub/internal/app/system/timeouts"
	"github.com/secassess/assesshub/internal/app/system/txn"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type copyRequest struct {
	TemplateID             string   `json:"templateId"`
	SourceOrganizationSlug string   `json:"sourceOrganizationSlug"`
	TargetVersion          string   `json:"targetVersion"`
	IncludeSections        []string `json:"includeSections"`
	OverwriteExisting      bool     `json:"overwriteExisting"`
}

// HandleCopyFromTemplate handles POST /assessments/{id}/copy-from-template.
// It synchronizes the assessment's items with a published template's
// criteria and returns the copy statistics.
func (h *Handler) HandleCopyFromTemplate(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.BadRequest(w, r, "invalid assessment id")
		return
	}

	var body copyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.BadRequest(w, r, "malformed request body")
		return
	}
	fields := map[string]string{}
	templateID, err := primitive.ObjectIDFromHex(body.TemplateID)
	if err != nil {
		fields["templateId"] = "must be a valid id"
	}
	// The slug and version identify the copy source for auditing; only
	// their shape is checked here, the template id is the lookup key.
	if !inputval.IsValidSlug(body.SourceOrganizationSlug) {
		fields["sourceOrganizationSlug"] = "organization slug is required"
	}
	if body.TargetVersion != "" && !inputval.IsValidSemVer(body.TargetVersion) {
		fields["targetVersion"] = "the template version must follow semantic versioning"
	}
	if len(fields) > 0 {
		apierr.FieldErrors(w, r, fields)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "copy criteria")
	defer cancel()

	req := core.CopyRequest{
		TemplateID:        templateID,
		IncludeSections:   body.IncludeSections,
		OverwriteExisting: body.OverwriteExisting,
	}

	var stats core.CopyStats
	err = txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		var err error
		stats, err = h.Svc.CopyCriteria(ctx, assessmentID, req)
		return err
	})
	if err != nil {
		h.ErrLog.Render(w, r, err)
		return
	}

	h.Cache.Purge()
	h.Log.Info("criteria copied",
		zap.String("assessment_id", assessmentID.Hex()),
		zap.String("template_id", templateID.Hex()),
		zap.Int("copied", stats.Copied),
		zap.Int("skipped", stats.SkippedDuplicates))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
