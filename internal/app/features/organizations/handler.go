// internal/app/features/organizations/handler.go
package organizations

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/secassess/assesshub/internal/app/features/apierr"
	organizationstore "github.com/secassess/assesshub/internal/app/store/organizations"
	projectstore "github.com/secassess/assesshub/internal/app/store/projects"
)

// Handler is the feature-level entry point for Organizations. The surface is
// read only; organizations are provisioned by the seed tool.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	Orgs     *organizationstore.Store
	Projects *projectstore.Store
	ErrLog   *apierr.ErrorLogger
}

// NewHandler constructs an Organizations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Orgs:     organizationstore.New(db),
		Projects: projectstore.New(db),
		ErrLog:   apierr.NewErrorLogger(logger),
	}
}
