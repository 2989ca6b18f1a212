// internal/domain/models/item.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssessmentItem is an assessment-local, scoreable copy of a criterion.
//
// CriterionRef links the item back to the criterion it was copied from and
// is the synchronization dedup key: at most one item per (assessment,
// criterion). It is nil for manually added items, which synchronization
// never touches. Score and Notes are assessment-local and survive
// overwriting copies.
type AssessmentItem struct {
	ID           primitive.ObjectID  `bson:"_id" json:"id"`
	AssessmentID primitive.ObjectID  `bson:"assessment_id" json:"assessment_id"`
	CriterionRef *primitive.ObjectID `bson:"criterion_ref,omitempty" json:"criterion_ref,omitempty"`

	Section  string  `bson:"section" json:"section"`
	Text     string  `bson:"text" json:"text"`
	Severity string  `bson:"severity" json:"severity"`
	Weight   float64 `bson:"weight" json:"weight"`

	Score *int   `bson:"score,omitempty" json:"score,omitempty"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
