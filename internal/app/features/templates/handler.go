// internal/app/features/templates/handler.go
package templates

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/secassess/assesshub/internal/app/features/apierr"
	templatestore "github.com/secassess/assesshub/internal/app/store/templates"
)

// Handler is the feature-level entry point for Templates. The surface is
// read only; templates are authored and published by the seed tool.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	Templates *templatestore.Store
	ErrLog    *apierr.ErrorLogger
}

// NewHandler constructs a Templates handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Templates: templatestore.New(db),
		ErrLog:    apierr.NewErrorLogger(logger),
	}
}
