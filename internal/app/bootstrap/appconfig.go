// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging
// level, CORS). AppConfig is everything specific to AssessHub: the Mongo
// connection, token signing, cache sizing, and operation deadlines. The
// struct is passed to most lifecycle hooks, so any configuration needed
// during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer token configuration
	TokenSigningKey string        // HMAC key for signing access tokens (must be strong in production)
	TokenIssuer     string        // Issuer claim stamped into and required from tokens
	TokenTTL        time.Duration // Lifetime of issued tokens

	// Listing cache
	ListCacheSize int // Max cached listing pages (non-positive uses the default)

	// Operation deadline overrides (zero keeps defaults)
	TimeoutShort time.Duration
	TimeoutLong  time.Duration
	TimeoutBatch time.Duration
}
