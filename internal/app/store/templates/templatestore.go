// internal/app/store/templates/templatestore.go
package templatestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateTemplate = errors.New("a template with this title and version already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("templates")}
}

// Create inserts a template. Missing criterion IDs are assigned; criteria
// order is preserved as given.
func (s *Store) Create(ctx context.Context, tpl models.Template) (models.Template, error) {
	now := time.Now().UTC()
	tpl.ID = primitive.NewObjectID()
	tpl.TitleCI = text.Fold(tpl.Title)
	if tpl.Status == "" {
		tpl.Status = models.TemplateDraft
	}
	for i := range tpl.Criteria {
		if tpl.Criteria[i].ID.IsZero() {
			tpl.Criteria[i].ID = primitive.NewObjectID()
		}
	}
	tpl.CreatedAt = now
	tpl.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, tpl)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Template{}, ErrDuplicateTemplate
		}
		return models.Template{}, err
	}
	return tpl, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Template, error) {
	var tpl models.Template
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&tpl); err != nil {
		return models.Template{}, err
	}
	return tpl, nil
}

// Publish moves a template to the published status. Published templates are
// the only valid copy sources; their criteria are treated as immutable.
func (s *Store) Publish(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     models.TemplatePublished,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListByOrganization returns an organization's templates sorted by folded
// title then version.
func (s *Store) ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]models.Template, error) {
	cur, err := s.c.Find(ctx, bson.M{"organization_id": orgID},
		options.Find().SetSort(bson.D{{Key: "title_ci", Value: 1}, {Key: "version", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tpls []models.Template
	if err := cur.All(ctx, &tpls); err != nil {
		return nil, err
	}
	return tpls, nil
}
