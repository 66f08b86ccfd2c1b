// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: WAFFLE's CoreConfig
// handles framework-level settings like ports, TLS, logging, and CORS.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token configuration
	TokenSecret     string        // Secret for signing credential tokens (must be strong in production)
	TokenCookieName string        // Cookie name the token travels in
	TokenTTL        time.Duration // Token lifetime

	// Payment gateway configuration
	StripeSecretKey  string // Stripe API secret key; blank disables the payment endpoints' gateway
	MinDonationCents int64  // Smallest accepted donation, in cents

	// Admin bootstrap
	AdminEmail string // Email promoted to admin on startup (blank skips)
}
