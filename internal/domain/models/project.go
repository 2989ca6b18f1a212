// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a single security engagement for an organization. Assessments
// reference a project; projects themselves carry no behavior in this service.
type Project struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Code           string             `bson:"code" json:"code"` // unique engagement code
	Name           string             `bson:"name" json:"name"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
