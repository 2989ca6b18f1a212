// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/secassess/assesshub/internal/app/system/indexes"
	"github.com/secassess/assesshub/internal/app/system/validators"
)

// EnsureSchema creates collection validators and indexes.
//
// Validators are applied before indexes so that a fresh database gets its
// $jsonSchema rules before any index build touches the collections. Both
// steps are idempotent and safe to run on every startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}
	logger.Info("database schema ensured", zap.String("database", appCfg.MongoDatabase))
	return nil
}
