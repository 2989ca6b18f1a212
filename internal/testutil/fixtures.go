package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/secassess/assesshub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calls chain: an existing route context on the request is extended.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization inserts a test organization with the given name and a
// slug derived from it.
func (f *Fixtures) CreateOrganization(ctx context.Context, name, slug string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("organizations").InsertOne(ctx, org); err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}
	return org
}

// CreateProject inserts a test project under the given organization.
func (f *Fixtures) CreateProject(ctx context.Context, orgID primitive.ObjectID, code, name string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:             primitive.NewObjectID(),
		Code:           code,
		Name:           name,
		OrganizationID: orgID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return p
}

// CreateTemplate inserts a published template with the given criteria.
// Criterion IDs are assigned when missing.
func (f *Fixtures) CreateTemplate(ctx context.Context, orgID primitive.ObjectID, title string, criteria []models.Criterion) models.Template {
	f.t.Helper()

	now := time.Now().UTC()
	for i := range criteria {
		if criteria[i].ID.IsZero() {
			criteria[i].ID = primitive.NewObjectID()
		}
	}
	tpl := models.Template{
		ID:             primitive.NewObjectID(),
		OrganizationID: orgID,
		Title:          title,
		TitleCI:        text.Fold(title),
		Version:        "1.0.0",
		Status:         models.TemplatePublished,
		Criteria:       criteria,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("templates").InsertOne(ctx, tpl); err != nil {
		f.t.Fatalf("failed to create test template: %v", err)
	}
	return tpl
}

// CreateDraftTemplate inserts a draft template.
func (f *Fixtures) CreateDraftTemplate(ctx context.Context, orgID primitive.ObjectID, title string, criteria []models.Criterion) models.Template {
	f.t.Helper()

	tpl := f.CreateTemplate(ctx, orgID, title, criteria)
	_, err := f.db.Collection("templates").UpdateByID(ctx, tpl.ID,
		map[string]any{"$set": map[string]any{"status": models.TemplateDraft}})
	if err != nil {
		f.t.Fatalf("failed to downgrade template to draft: %v", err)
	}
	tpl.Status = models.TemplateDraft
	return tpl
}

// Criterion builds a criterion value for template fixtures.
func Criterion(section, body, severity string, weight float64) models.Criterion {
	return models.Criterion{
		ID:       primitive.NewObjectID(),
		Section:  section,
		Text:     body,
		Severity: severity,
		Weight:   weight,
	}
}

// CreateAssessment inserts an open assessment for the given project.
func (f *Fixtures) CreateAssessment(ctx context.Context, projectID primitive.ObjectID, title string) models.Assessment {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Assessment{
		ID:        primitive.NewObjectID(),
		ProjectID: projectID,
		Title:     title,
		TitleCI:   text.Fold(title),
		Status:    models.AssessmentOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("assessments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assessment: %v", err)
	}
	return a
}

// CreateItem inserts an assessment item copied from the given criterion.
// Pass a nil criterionRef for a manually added item.
func (f *Fixtures) CreateItem(ctx context.Context, assessmentID primitive.ObjectID, criterionRef *primitive.ObjectID, section, itemText, severity string, weight float64) models.AssessmentItem {
	f.t.Helper()

	now := time.Now().UTC()
	item := models.AssessmentItem{
		ID:           primitive.NewObjectID(),
		AssessmentID: assessmentID,
		CriterionRef: criterionRef,
		Section:      section,
		Text:         itemText,
		Severity:     severity,
		Weight:       weight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("assessment_items").InsertOne(ctx, item); err != nil {
		f.t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// ScoreItem sets score and notes directly on an item.
func (f *Fixtures) ScoreItem(ctx context.Context, itemID primitive.ObjectID, score int, notes string) {
	f.t.Helper()

	_, err := f.db.Collection("assessment_items").UpdateByID(ctx, itemID,
		map[string]any{"$set": map[string]any{
			"score":      score,
			"notes":      notes,
			"updated_at": time.Now().UTC(),
		}})
	if err != nil {
		f.t.Fatalf("failed to score test item: %v", err)
	}
}
