package projectstore_test

import (
	"errors"
	"testing"

	projectstore "github.com/secassess/assesshub/internal/app/store/projects"
	"github.com/secassess/assesshub/internal/domain/models"
	"github.com/secassess/assesshub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Proj Org", "proj-org")

	created, err := store.Create(ctx, models.Project{
		Code:           "PAY-01",
		Name:           "Payments Gateway",
		OrganizationID: org.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
}

func TestStore_Create_DuplicateCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "Dup Org", "dup-org")

	if _, err := store.Create(ctx, models.Project{Code: "DUP-01", Name: "One", OrganizationID: org.ID}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.Project{Code: "DUP-01", Name: "Two", OrganizationID: org.ID})
	if !errors.Is(err, projectstore.ErrDuplicateProject) {
		t.Errorf("expected ErrDuplicateProject, got %v", err)
	}
}

func TestStore_ListByOrganization(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "List Org", "list-org")
	other := fx.CreateOrganization(ctx, "Other Org", "other-org")
	fx.CreateProject(ctx, org.ID, "B-02", "Second")
	fx.CreateProject(ctx, org.ID, "A-01", "First")
	fx.CreateProject(ctx, other.ID, "X-99", "Elsewhere")

	projects, err := store.ListByOrganization(ctx, org.ID)
	if err != nil {
		t.Fatalf("ListByOrganization failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].Code != "A-01" || projects[1].Code != "B-02" {
		t.Errorf("unexpected order: %s, %s", projects[0].Code, projects[1].Code)
	}
}
