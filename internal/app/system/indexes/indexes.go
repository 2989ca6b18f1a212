// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent; errors
are aggregated so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureOrganizations(ctx, db); err != nil {
		problems = append(problems, "organizations: "+err.Error())
	}
	if err := ensureProjects(ctx, db); err != nil {
		problems = append(problems, "projects: "+err.Error())
	}
	if err := ensureTemplates(ctx, db); err != nil {
		problems = append(problems, "templates: "+err.Error())
	}
	if err := ensureAssessments(ctx, db); err != nil {
		problems = append(problems, "assessments: "+err.Error())
	}
	if err := ensureAssessmentItems(ctx, db); err != nil {
		problems = append(problems, "assessment_items: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	out := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return out, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out, cur.Err()
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	existing, err := listIndexes(ctx, coll)
	if err != nil {
		zap.L().Warn("listing indexes failed, creating blind",
			zap.String("collection", coll.Name()),
			zap.Error(err))
	}

	var errs []string
	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		desiredSig := keySig(m.Keys.(bson.D))

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) && (desiredName == "" || ex.Name == desiredName) {
				continue
			}
			// Name or options drifted: drop and recreate under the desired shape.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureOrganizations(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("organizations")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_orgs_slug"),
		},
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_orgs_nameci"),
		},
	})
}

func ensureProjects(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("projects")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_projects_code"),
		},
		{
			Keys:    bson.D{{Key: "organization_id", Value: 1}},
			Options: options.Index().SetName("idx_projects_org"),
		},
	})
}

func ensureTemplates(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("templates")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One published version per title within an organization.
		{
			Keys: bson.D{
				{Key: "organization_id", Value: 1},
				{Key: "title_ci", Value: 1},
				{Key: "version", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_templates_org_titleci_version"),
		},
		{
			Keys: bson.D{
				{Key: "organization_id", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("idx_templates_org_status"),
		},
	})
}

func ensureAssessments(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("assessments")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "project_id", Value: 1}},
			Options: options.Index().SetName("idx_assessments_project"),
		},
		// Listing default sort.
		{
			Keys: bson.D{
				{Key: "updated_at", Value: -1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_assessments_updated_id"),
		},
		{
			Keys: bson.D{
				{Key: "title_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_assessments_titleci_id"),
		},
	})
}

func ensureAssessmentItems(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("assessment_items")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Duplicate guard for synchronization: at most one item per
		// (assessment, criterion) pair. Partial so manually added items with
		// no criterion reference stay unconstrained.
		{
			Keys: bson.D{
				{Key: "assessment_id", Value: 1},
				{Key: "criterion_ref", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_items_assessment_criterion").
				SetPartialFilterExpression(bson.D{
					{Key: "criterion_ref", Value: bson.D{{Key: "$type", Value: "objectId"}}},
				}),
		},
		{
			Keys:    bson.D{{Key: "assessment_id", Value: 1}},
			Options: options.Index().SetName("idx_items_assessment"),
		},
	})
}
