// internal/app/store/items/itemstore.go
package itemstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateItem surfaces the unique (assessment, criterion) guard when
// two writers race to create the same copied item.
var ErrDuplicateItem = errors.New("an item for this criterion already exists on the assessment")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assessment_items")}
}

// ListByAssessment returns every item owned by the assessment, oldest first.
func (s *Store) ListByAssessment(ctx context.Context, assessmentID primitive.ObjectID) ([]models.AssessmentItem, error) {
	cur, err := s.c.Find(ctx, bson.M{"assessment_id": assessmentID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.AssessmentItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByAssessments returns the items of several assessments in one query,
// grouped by owner. Assessments with no items are absent from the map. The
// listing endpoint uses this to attach items to a page of assessments
// without a query per row.
func (s *Store) ListByAssessments(ctx context.Context, assessmentIDs []primitive.ObjectID) (map[primitive.ObjectID][]models.AssessmentItem, error) {
	grouped := make(map[primitive.ObjectID][]models.AssessmentItem, len(assessmentIDs))
	if len(assessmentIDs) == 0 {
		return grouped, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"assessment_id": bson.M{"$in": assessmentIDs}},
		options.Find().SetSort(bson.D{{Key: "assessment_id", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.AssessmentItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		grouped[item.AssessmentID] = append(grouped[item.AssessmentID], item)
	}
	return grouped, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.AssessmentItem, error) {
	var item models.AssessmentItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return models.AssessmentItem{}, err
	}
	return item, nil
}

// SaveAll writes the batch in one bulk operation. Items without an ID are
// inserted; items with an ID replace the stored document. Timestamps are
// refreshed on every written item.
func (s *Store) SaveAll(ctx context.Context, items []models.AssessmentItem) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	writes := make([]mongo.WriteModel, 0, len(items))
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = primitive.NewObjectID()
			items[i].CreatedAt = now
		}
		items[i].UpdatedAt = now
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": items[i].ID}).
			SetReplacement(items[i]).
			SetUpsert(true))
	}

	_, err := s.c.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateItem
		}
		return err
	}
	return nil
}

// SetScore records a score and sanitized notes on one item. Returns the
// updated item; mongo.ErrNoDocuments when the item is missing or not owned
// by the assessment.
func (s *Store) SetScore(ctx context.Context, assessmentID, itemID primitive.ObjectID, score int, notes string) (models.AssessmentItem, error) {
	filter := bson.M{"_id": itemID, "assessment_id": assessmentID}
	update := bson.M{"$set": bson.M{
		"score":      score,
		"notes":      notes,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.AssessmentItem
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&item); err != nil {
		return models.AssessmentItem{}, err
	}
	return item, nil
}
