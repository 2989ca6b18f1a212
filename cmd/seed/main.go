// Command seed loads a demo data set into an AssessHub database.
//
// It creates an organization, a project, a published criteria template, and
// an open assessment, then prints the IDs needed to exercise the API. It is
// safe to re-run: duplicate organizations, projects, and templates are
// reported and skipped rather than treated as failures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	assessmentstore "github.com/secassess/assesshub/internal/app/store/assessments"
	organizationstore "github.com/secassess/assesshub/internal/app/store/organizations"
	projectstore "github.com/secassess/assesshub/internal/app/store/projects"
	templatestore "github.com/secassess/assesshub/internal/app/store/templates"
	"github.com/secassess/assesshub/internal/app/system/indexes"
	"github.com/secassess/assesshub/internal/app/system/validators"
	"github.com/secassess/assesshub/internal/domain/models"
)

func main() {
	var (
		uri    = flag.String("uri", "mongodb://localhost:27017", "MongoDB connection URI")
		dbName = flag.String("db", "assesshub", "database name")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*uri, *dbName, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(uri, dbName string, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB: %w", err)
	}

	db := client.Database(dbName)
	if err := validators.EnsureAll(ctx, db); err != nil {
		return err
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		return err
	}

	orgs := organizationstore.New(db)
	org, err := orgs.Create(ctx, models.Organization{
		Name: "Acme Security",
		Slug: "acme-security",
	})
	if errors.Is(err, organizationstore.ErrDuplicateOrganization) {
		logger.Info("organization already seeded", zap.String("slug", "acme-security"))
		org, err = orgs.GetBySlug(ctx, "acme-security")
	}
	if err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}

	projects := projectstore.New(db)
	project, err := projects.Create(ctx, models.Project{
		Code:           "ACME-2026-001",
		Name:           "Payment Gateway Review",
		OrganizationID: org.ID,
	})
	if errors.Is(err, projectstore.ErrDuplicateProject) {
		logger.Info("project already seeded", zap.String("code", "ACME-2026-001"))
		project, err = projects.GetByCode(ctx, "ACME-2026-001")
	}
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	templates := templatestore.New(db)
	tpl, err := templates.Create(ctx, models.Template{
		OrganizationID: org.ID,
		Title:          "Baseline Web Application Checklist",
		Version:        "1.0.0",
		Status:         models.TemplatePublished,
		Criteria: []models.Criterion{
			{Section: "Authentication", Text: "Passwords are stored with a memory-hard hash.", Severity: models.SeverityHigh, Weight: 3},
			{Section: "Authentication", Text: "Sessions expire after a bounded idle period.", Severity: models.SeverityMedium, Weight: 2},
			{Section: "Transport", Text: "All endpoints require TLS 1.2 or newer.", Severity: models.SeverityHigh, Weight: 3},
			{Section: "Transport", Text: "HSTS is enabled on public hosts.", Severity: models.SeverityLow, Weight: 1},
			{Section: "Input Handling", Text: "Database access uses parameterized queries.", Severity: models.SeverityHigh, Weight: 3},
		},
	})
	if errors.Is(err, templatestore.ErrDuplicateTemplate) {
		logger.Info("template already seeded",
			zap.String("title", "Baseline Web Application Checklist"),
			zap.String("version", "1.0.0"))
		existing, lerr := templates.ListByOrganization(ctx, org.ID)
		if lerr != nil {
			return fmt.Errorf("seed template: %w", lerr)
		}
		for _, t := range existing {
			if t.Title == "Baseline Web Application Checklist" && t.Version == "1.0.0" {
				tpl = t
				break
			}
		}
	} else if err != nil {
		return fmt.Errorf("seed template: %w", err)
	}

	assessments := assessmentstore.New(db)
	assessment, err := assessments.Create(ctx, models.Assessment{
		ProjectID: project.ID,
		Title:     "Q3 Gateway Assessment",
	})
	if err != nil {
		return fmt.Errorf("seed assessment: %w", err)
	}

	logger.Info("seed complete",
		zap.String("organization_id", org.ID.Hex()),
		zap.String("project_id", project.ID.Hex()),
		zap.String("template_id", tpl.ID.Hex()),
		zap.String("assessment_id", assessment.ID.Hex()),
	)
	return nil
}
