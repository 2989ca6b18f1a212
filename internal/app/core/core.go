// internal/app/core/core.go

// Package core implements the criteria synchronizer and the assessment
// status transition guard. It is storage-agnostic: callers provide the
// store contracts below, and callers that need atomicity wrap the calls in
// a transaction (see internal/app/system/txn).
package core

import (
	"context"

	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TemplateStore is the read-only template lookup the synchronizer consumes.
type TemplateStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Template, error)
}

// AssessmentStore reads and writes assessments.
type AssessmentStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Assessment, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Assessment, error)
}

// ItemStore reads and batch-writes an assessment's items.
type ItemStore interface {
	ListByAssessment(ctx context.Context, assessmentID primitive.ObjectID) ([]models.AssessmentItem, error)
	SaveAll(ctx context.Context, items []models.AssessmentItem) error
}

// Service wires the stores into the two core operations.
type Service struct {
	Templates   TemplateStore
	Assessments AssessmentStore
	Items       ItemStore
	Log         *zap.Logger
}

// NewService constructs a Service. A nil logger is replaced with a no-op one.
func NewService(templates TemplateStore, assessments AssessmentStore, items ItemStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Templates:   templates,
		Assessments: assessments,
		Items:       items,
		Log:         logger,
	}
}

// CopyRequest carries the parameters of one synchronization call.
type CopyRequest struct {
	TemplateID        primitive.ObjectID
	IncludeSections   []string // empty means no section filter
	OverwriteExisting bool
}

// CopyStats summarizes one synchronization call.
//
// TotalSource == FilteredOut + Copied + SkippedDuplicates holds after every
// call.
type CopyStats struct {
	Copied            int `json:"copied"`
	SkippedDuplicates int `json:"skippedDuplicates"`
	FilteredOut       int `json:"filteredOut"`
	TotalSource       int `json:"totalSource"`
}
