package templatestore_test

import (
	"errors"
	"testing"

	templatestore "github.com/secassess/assesshub/internal/app/store/templates"
	"github.com/secassess/assesshub/internal/domain/models"
	"github.com/secassess/assesshub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_AssignsCriterionIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := templatestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Tpl Org", "tpl-org")

	created, err := store.Create(ctx, models.Template{
		OrganizationID: org.ID,
		Title:          "Web Baseline",
		Version:        "1.0",
		Criteria: []models.Criterion{
			{Section: "Authentication", Text: "Passwords are hashed", Severity: models.SeverityHigh, Weight: 3},
			{Section: "Network", Text: "TLS everywhere", Severity: models.SeverityMedium, Weight: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != models.TemplateDraft {
		t.Errorf("status = %q, want draft default", created.Status)
	}
	for i, c := range created.Criteria {
		if c.ID.IsZero() {
			t.Errorf("criterion %d has no ID", i)
		}
	}
}

func TestStore_Create_DuplicateTitleVersion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := templatestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Dup Tpl Org", "dup-tpl-org")

	tpl := models.Template{OrganizationID: org.ID, Title: "Baseline", Version: "2.0"}
	if _, err := store.Create(ctx, tpl); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, tpl)
	if !errors.Is(err, templatestore.ErrDuplicateTemplate) {
		t.Errorf("expected ErrDuplicateTemplate, got %v", err)
	}
}

func TestStore_GetByID_PreservesCriteriaOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := templatestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Order Org", "order-org")
	tpl := fx.CreateTemplate(ctx, org.ID, "Ordered", []models.Criterion{
		testutil.Criterion("C", "third", models.SeverityLow, 1),
		testutil.Criterion("A", "first", models.SeverityHigh, 3),
		testutil.Criterion("B", "second", models.SeverityMedium, 2),
	})

	got, err := store.GetByID(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Criteria) != 3 {
		t.Fatalf("got %d criteria, want 3", len(got.Criteria))
	}
	for i, want := range []string{"C", "A", "B"} {
		if got.Criteria[i].Section != want {
			t.Errorf("criteria[%d].Section = %q, want %q", i, got.Criteria[i].Section, want)
		}
	}
}

func TestStore_Publish(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := templatestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Pub Org", "pub-org")
	tpl := fx.CreateDraftTemplate(ctx, org.ID, "Draft Tpl", nil)

	if err := store.Publish(ctx, tpl.ID); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	got, err := store.GetByID(ctx, tpl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.TemplatePublished {
		t.Errorf("status = %q, want published", got.Status)
	}

	err = store.Publish(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments for missing template, got %v", err)
	}
}
