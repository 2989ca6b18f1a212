// internal/domain/models/template.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template status values. Only published templates may be copied from.
const (
	TemplateDraft     = "draft"
	TemplatePublished = "published"
)

// Severity levels for criteria and assessment items.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// IsValidSeverity reports whether s is a recognized severity level.
func IsValidSeverity(s string) bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// Template is a versioned, organization-owned bundle of criteria.
//
// Criteria are embedded in document order; that order is the source order
// the synchronizer preserves. Once a template is published its criteria are
// immutable snapshots.
type Template struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	Title          string             `bson:"title" json:"title"`
	TitleCI        string             `bson:"title_ci" json:"-"` // ← always stored
	Version        string             `bson:"version" json:"version"`
	Status         string             `bson:"status" json:"status"` // "draft" | "published"

	Criteria []Criterion `bson:"criteria" json:"criteria"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Criterion is a single reusable security requirement inside a template.
type Criterion struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Section  string             `bson:"section" json:"section"` // free-text grouping label
	Text     string             `bson:"text" json:"text"`
	Severity string             `bson:"severity" json:"severity"` // "low" | "medium" | "high"
	Weight   float64            `bson:"weight" json:"weight"`
}
