// internal/app/store/assessments/assessmentstore.go
package assessmentstore

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/secassess/assesshub/internal/app/system/paging"
	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assessments")}
}

func (s *Store) Create(ctx context.Context, a models.Assessment) (models.Assessment, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.TitleCI = text.Fold(a.Title)
	if a.Status == "" {
		a.Status = models.AssessmentOpen
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Assessment{}, err
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Assessment, error) {
	var a models.Assessment
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Assessment{}, err
	}
	return a, nil
}

// UpdateStatus persists a status change and refreshes UpdatedAt. Returns the
// updated assessment; mongo.ErrNoDocuments when the assessment is missing.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.Assessment, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return models.Assessment{}, err
	}
	if res.MatchedCount == 0 {
		return models.Assessment{}, mongo.ErrNoDocuments
	}
	return s.GetByID(ctx, id)
}

// List returns one page of assessments plus the total count across all pages.
func (s *Store) List(ctx context.Context, spec paging.PageSpec) ([]models.Assessment, int64, error) {
	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	cur, err := s.c.Find(ctx, bson.M{}, spec.FindOptions())
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Assessment
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
