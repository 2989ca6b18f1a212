// internal/domain/models/assessment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment status values.
const (
	AssessmentOpen       = "open"
	AssessmentInProgress = "in_progress"
	AssessmentCompleted  = "completed"
)

// IsValidAssessmentStatus reports whether s is a recognized assessment status.
func IsValidAssessmentStatus(s string) bool {
	return s == AssessmentOpen || s == AssessmentInProgress || s == AssessmentCompleted
}

// Assessment tracks a security review of a project. Items live in their own
// collection keyed by assessment_id; the assessment document stores no item
// list so the ownership graph stays one-directional.
type Assessment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"project_id"`
	Title     string             `bson:"title" json:"title"`
	TitleCI   string             `bson:"title_ci" json:"-"` // ← always stored
	Status    string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
