// internal/app/core/status.go
package core

import (
	"context"
	"errors"

	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UpdateStatus applies a status change to an assessment.
//
// Entering completed requires every item to carry a score; an assessment
// with no items completes vacuously. All other transitions, including
// leaving completed, are unconditional. On rejection the assessment is left
// unmodified.
func (s *Service) UpdateStatus(ctx context.Context, assessmentID primitive.ObjectID, status string) (models.Assessment, error) {
	s.Log.Info("updating assessment status",
		zap.String("assessment_id", assessmentID.Hex()),
		zap.String("status", status))

	assessment, err := s.Assessments.GetByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Assessment{}, &NotFoundError{Resource: "Assessment", ID: assessmentID.Hex()}
		}
		return models.Assessment{}, err
	}

	if status == models.AssessmentCompleted {
		items, err := s.Items.ListByAssessment(ctx, assessment.ID)
		if err != nil {
			return models.Assessment{}, err
		}
		for _, item := range items {
			if item.Score == nil {
				s.Log.Warn("completion rejected: unscored items remain",
					zap.String("assessment_id", assessment.ID.Hex()),
					zap.String("item_id", item.ID.Hex()))
				return models.Assessment{}, &ValidationError{
					Reason: "cannot complete assessment " + assessment.ID.Hex() + ": all items must have a score",
				}
			}
		}
	}

	updated, err := s.Assessments.UpdateStatus(ctx, assessment.ID, status)
	if err != nil {
		return models.Assessment{}, err
	}
	s.Log.Info("assessment status updated",
		zap.String("assessment_id", updated.ID.Hex()),
		zap.String("status", updated.Status))
	return updated, nil
}
