// internal/app/features/assessments/handler.go
package assessments

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/secassess/assesshub/internal/app/core"
	"github.com/secassess/assesshub/internal/app/features/apierr"
	assessmentstore "github.com/secassess/assesshub/internal/app/store/assessments"
	itemstore "github.com/secassess/assesshub/internal/app/store/items"
	templatestore "github.com/secassess/assesshub/internal/app/store/templates"
	"github.com/secassess/assesshub/internal/app/system/listcache"
)

// Handler is the feature-level entry point for Assessments. It owns the
// criteria synchronizer (core.Service), the backing stores, and the listing
// cache.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	Svc         *core.Service
	Assessments *assessmentstore.Store
	Items       *itemstore.Store
	Cache       *listcache.Cache[listResponse]
	ErrLog      *apierr.ErrorLogger
}

// NewHandler constructs an Assessments handler bound to a DB and logger.
// cacheSize bounds the listing cache; non-positive values use the default.
func NewHandler(db *mongo.Database, logger *zap.Logger, cacheSize int) (*Handler, error) {
	assessments := assessmentstore.New(db)
	items := itemstore.New(db)
	templates := templatestore.New(db)

	cache, err := listcache.New[listResponse](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Handler{
		DB:          db,
		Log:         logger,
		Svc:         core.NewService(templates, assessments, items, logger),
		Assessments: assessments,
		Items:       items,
		Cache:       cache,
		ErrLog:      apierr.NewErrorLogger(logger),
	}, nil
}
