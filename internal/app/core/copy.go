// internal/app/core/copy.go
package core

import (
	"context"
	"errors"
	"time"

	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CopyCriteria copies a published template's criteria into an assessment's
// item set.
//
// Criteria are visited in the template's stored order. A non-empty section
// filter restricts the source set first. Existing items are matched by
// criterion_ref: with OverwriteExisting they take the criterion's section,
// text, severity, and weight while keeping score and notes; without it they
// are skipped. Items that never referenced a criterion are not touched.
// Created and updated items go to the store as one batch.
func (s *Service) CopyCriteria(ctx context.Context, assessmentID primitive.ObjectID, req CopyRequest) (CopyStats, error) {
	s.Log.Info("starting criteria copy",
		zap.String("assessment_id", assessmentID.Hex()),
		zap.String("template_id", req.TemplateID.Hex()))

	assessment, err := s.Assessments.GetByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.Log.Warn("assessment not found for copy", zap.String("assessment_id", assessmentID.Hex()))
			return CopyStats{}, &NotFoundError{Resource: "Assessment", ID: assessmentID.Hex()}
		}
		return CopyStats{}, err
	}

	template, err := s.Templates.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.Log.Warn("template not found for copy", zap.String("template_id", req.TemplateID.Hex()))
			return CopyStats{}, &NotFoundError{Resource: "Template", ID: req.TemplateID.Hex()}
		}
		return CopyStats{}, err
	}

	if template.Status != models.TemplatePublished {
		s.Log.Warn("copy from non-published template rejected",
			zap.String("template_id", template.ID.Hex()),
			zap.String("status", template.Status))
		return CopyStats{}, &ValidationError{Reason: "cannot copy from a template that is not published"}
	}

	totalSource := len(template.Criteria)

	source := template.Criteria
	if len(req.IncludeSections) > 0 {
		include := make(map[string]struct{}, len(req.IncludeSections))
		for _, sec := range req.IncludeSections {
			include[sec] = struct{}{}
		}
		filtered := make([]models.Criterion, 0, len(source))
		for _, c := range source {
			if _, ok := include[c.Section]; ok {
				filtered = append(filtered, c)
			}
		}
		source = filtered
	}
	filteredOut := totalSource - len(source)

	existing, err := s.Items.ListByAssessment(ctx, assessment.ID)
	if err != nil {
		return CopyStats{}, err
	}

	// Index current items by criterion_ref; manual items stay out of the
	// index and are never modified.
	byRef := make(map[primitive.ObjectID]models.AssessmentItem, len(existing))
	for _, item := range existing {
		if item.CriterionRef != nil {
			byRef[*item.CriterionRef] = item
		}
	}

	now := time.Now().UTC()
	var toSave []models.AssessmentItem
	copied, skipped := 0, 0

	for _, criterion := range source {
		if item, ok := byRef[criterion.ID]; ok {
			if !req.OverwriteExisting {
				skipped++
				continue
			}
			item.Section = criterion.Section
			item.Text = criterion.Text
			item.Severity = criterion.Severity
			item.Weight = criterion.Weight
			item.UpdatedAt = now
			toSave = append(toSave, item)
			copied++
			continue
		}

		ref := criterion.ID
		toSave = append(toSave, models.AssessmentItem{
			ID:           primitive.NewObjectID(),
			AssessmentID: assessment.ID,
			CriterionRef: &ref,
			Section:      criterion.Section,
			Text:         criterion.Text,
			Severity:     criterion.Severity,
			Weight:       criterion.Weight,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		copied++
	}

	if len(toSave) > 0 {
		if err := s.Items.SaveAll(ctx, toSave); err != nil {
			return CopyStats{}, err
		}
	}

	stats := CopyStats{
		Copied:            copied,
		SkippedDuplicates: skipped,
		FilteredOut:       filteredOut,
		TotalSource:       totalSource,
	}
	s.Log.Info("criteria copy finished",
		zap.String("assessment_id", assessment.ID.Hex()),
		zap.Int("copied", stats.Copied),
		zap.Int("skipped", stats.SkippedDuplicates),
		zap.Int("filtered_out", stats.FilteredOut))
	return stats, nil
}
