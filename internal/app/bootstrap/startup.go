// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/pawhub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail != "" {
		return ensureAdmin(ctx, deps, appCfg.AdminEmail, logger)
	}
	return nil
}

// ensureAdmin promotes the configured account to admin, creating it if
// it does not exist yet. Without this there is no way to mint the
// first admin, since registration never accepts a role.
func ensureAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	email = normalize.Email(email)

	res, err := deps.MongoDatabase.Collection("users").UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":         bson.M{"role": "admin"},
			"$setOnInsert": bson.M{"email": email},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return err
	}

	if res.UpsertedCount > 0 {
		logger.Info("created admin account", zap.String("email", email))
	} else if res.ModifiedCount > 0 {
		logger.Info("promoted account to admin", zap.String("email", email))
	}
	return nil
}
