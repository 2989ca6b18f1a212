// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	assessmentsfeature "github.com/secassess/assesshub/internal/app/features/assessments"
	healthfeature "github.com/secassess/assesshub/internal/app/features/health"
	organizationsfeature "github.com/secassess/assesshub/internal/app/features/organizations"
	templatesfeature "github.com/secassess/assesshub/internal/app/features/templates"
	"github.com/secassess/assesshub/internal/app/system/auth"
	"github.com/secassess/assesshub/internal/app/system/correlation"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// AssessHub applies correlation and bearer-token middleware globally, then
// mounts the JSON API: health, organizations, templates, and assessments.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tm, err := auth.NewTokenManager(appCfg.TokenSigningKey, appCfg.TokenIssuer, appCfg.TokenTTL, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Every request gets a correlation ID for log tracing.
	r.Use(correlation.Middleware)

	// Global auth middleware: parses the bearer token and loads the
	// TokenUser into context if present. Route groups decide whether a
	// signed-in user or a specific role is required.
	r.Use(tm.LoadTokenUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	assessHandler, err := assessmentsfeature.NewHandler(deps.MongoDatabase, logger, appCfg.ListCacheSize)
	if err != nil {
		logger.Error("assessments handler init failed", zap.Error(err))
		return nil, err
	}

	r.Route("/api/v1", func(api chi.Router) {
		orgHandler := organizationsfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/organizations", organizationsfeature.Routes(orgHandler, tm))

		tplHandler := templatesfeature.NewHandler(deps.MongoDatabase, logger)
		api.Mount("/templates", templatesfeature.Routes(tplHandler, tm))

		api.Mount("/assessments", assessmentsfeature.Routes(assessHandler, tm))
	})

	return r, nil
}
