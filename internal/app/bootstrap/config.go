// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for PawHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_secret, etc.
//   - Environment variables: PAWHUB_MONGO_URI, PAWHUB_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "pet-adoption", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Token configuration
	{Name: "token_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Credential token signing secret (must be strong in production)"},
	{Name: "token_cookie_name", Default: "pawhub-token", Desc: "Cookie name for the credential token"},
	{Name: "token_ttl", Default: "1h", Desc: "Credential token lifetime (e.g., 1h, 30m)"},

	// Payment gateway configuration
	{Name: "stripe_secret_key", Default: "", Desc: "Stripe API secret key (blank disables real payments)"},
	{Name: "min_donation_cents", Default: 100, Desc: "Smallest accepted donation in cents"},

	// Admin bootstrap
	{Name: "admin_email", Default: "", Desc: "Email promoted to admin on startup (blank skips)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PAWHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PAWHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSecret:     appValues.String("token_secret"),
		TokenCookieName: appValues.String("token_cookie_name"),
		TokenTTL:        appValues.Duration("token_ttl", time.Hour),

		StripeSecretKey:  appValues.String("stripe_secret_key"),
		MinDonationCents: int64(appValues.Int("min_donation_cents")),

		AdminEmail: appValues.String("admin_email"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// PawHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and refuses an empty token
// secret outright.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.TokenSecret == "" {
		return fmt.Errorf("token_secret must not be empty")
	}
	if appCfg.MinDonationCents < 0 {
		return fmt.Errorf("min_donation_cents must not be negative")
	}
	if coreCfg.Env == "prod" && appCfg.StripeSecretKey == "" {
		logger.Warn("stripe_secret_key is empty; payment endpoints will reject intents")
	}
	return nil
}
