// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for AssessHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_signing_key, etc.
//   - Environment variables: ASSESSHUB_MONGO_URI, ASSESSHUB_TOKEN_SIGNING_KEY, etc.
//   - Command-line flags: --mongo_uri, --token_signing_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "assesshub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Bearer tokens
	{Name: "token_signing_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC key for signing access tokens (must be strong in production)"},
	{Name: "token_issuer", Default: "assesshub", Desc: "Issuer claim for access tokens"},
	{Name: "token_ttl", Default: "12h", Desc: "Access token lifetime (e.g., 12h, 30m)"},

	// Listing cache
	{Name: "list_cache_size", Default: 256, Desc: "Max cached assessment listing pages"},

	// Operation deadlines (blank keeps built-in defaults)
	{Name: "timeout_short", Default: "", Desc: "Deadline for single-document reads (e.g., 5s)"},
	{Name: "timeout_long", Default: "", Desc: "Deadline for transactional flows (e.g., 30s)"},
	{Name: "timeout_batch", Default: "", Desc: "Deadline for bulk item writes (e.g., 60s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built. WAFFLE's
// config.LoadWithAppConfig merges .env files, config files, environment
// variables (WAFFLE_* for core, ASSESSHUB_* for app), and command-line
// flags, with precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ASSESSHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSigningKey: appValues.String("token_signing_key"),
		TokenIssuer:     appValues.String("token_issuer"),
		TokenTTL:        appValues.Duration("token_ttl", 12*time.Hour),

		ListCacheSize: appValues.Int("list_cache_size"),

		TimeoutShort: appValues.Duration("timeout_short", 0),
		TimeoutLong:  appValues.Duration("timeout_long", 0),
		TimeoutBatch: appValues.Duration("timeout_batch", 0),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// AssessHub validates the MongoDB URI format and the token configuration to
// catch errors early, before attempting to connect or serve.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.TokenSigningKey == "" {
		return fmt.Errorf("token_signing_key must not be empty")
	}
	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", appCfg.TokenTTL)
	}

	return nil
}
