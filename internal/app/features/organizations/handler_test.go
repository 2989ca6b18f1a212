package organizations_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/secassess/assesshub/internal/app/features/organizations"
	"github.com/secassess/assesshub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := organizations.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateOrganization(ctx, "Beta Corp", "beta")
	fx.CreateOrganization(ctx, "Alpha Inc", "alpha")

	r := testutil.NewRequest("GET", "/organizations")
	r = testutil.WithUser(r, testutil.ViewerUser())
	w := httptest.NewRecorder()

	h.ServeList(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Organizations []struct {
			Slug string `json:"slug"`
		} `json:"organizations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Organizations) != 2 {
		t.Fatalf("got %d organizations, want 2", len(resp.Organizations))
	}
	if resp.Organizations[0].Slug != "alpha" {
		t.Errorf("first slug = %q, want alpha", resp.Organizations[0].Slug)
	}
}

func TestServeView(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := organizations.NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "View Corp", "view-corp")
	fx.CreateProject(ctx, org.ID, "VC-01", "First Project")

	r := testutil.NewRequest("GET", "/organizations/view-corp")
	r = testutil.WithChiURLParam(r, "slug", "view-corp")
	r = testutil.WithUser(r, testutil.ViewerUser())
	w := httptest.NewRecorder()

	h.ServeView(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Organization struct {
			Slug string `json:"slug"`
		} `json:"organization"`
		Projects []struct {
			Code string `json:"code"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Organization.Slug != "view-corp" {
		t.Errorf("slug = %q", resp.Organization.Slug)
	}
	if len(resp.Projects) != 1 || resp.Projects[0].Code != "VC-01" {
		t.Errorf("unexpected projects: %+v", resp.Projects)
	}
}

func TestServeView_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := organizations.NewHandler(db, zap.NewNop())

	r := testutil.NewRequest("GET", "/organizations/missing")
	r = testutil.WithChiURLParam(r, "slug", "missing")
	r = testutil.WithUser(r, testutil.ViewerUser())
	w := httptest.NewRecorder()

	h.ServeView(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
