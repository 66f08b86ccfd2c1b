// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	adoptionsfeature "github.com/dalemusser/pawhub/internal/app/features/adoptions"
	authtokenfeature "github.com/dalemusser/pawhub/internal/app/features/authtoken"
	blogsfeature "github.com/dalemusser/pawhub/internal/app/features/blogs"
	campaignsfeature "github.com/dalemusser/pawhub/internal/app/features/campaigns"
	donationsfeature "github.com/dalemusser/pawhub/internal/app/features/donations"
	healthfeature "github.com/dalemusser/pawhub/internal/app/features/health"
	petsfeature "github.com/dalemusser/pawhub/internal/app/features/pets"
	usersfeature "github.com/dalemusser/pawhub/internal/app/features/users"
	adoptionstore "github.com/dalemusser/pawhub/internal/app/store/adoptions"
	blogstore "github.com/dalemusser/pawhub/internal/app/store/blogs"
	campaignstore "github.com/dalemusser/pawhub/internal/app/store/campaigns"
	donationstore "github.com/dalemusser/pawhub/internal/app/store/donations"
	petstore "github.com/dalemusser/pawhub/internal/app/store/pets"
	userstore "github.com/dalemusser/pawhub/internal/app/store/users"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/payments"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. PawHub creates the token
// manager, wires the per-request role lookup, and mounts every feature
// router at the API root so the paths match what the SPA already
// calls.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	mgr, err := auth.NewManager(appCfg.TokenSecret, appCfg.TokenCookieName, appCfg.TokenTTL, secure, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)
	pets := petstore.New(deps.MongoDatabase)
	adoptions := adoptionstore.New(deps.MongoDatabase)
	campaigns := campaignstore.New(deps.MongoDatabase)
	donations := donationstore.New(deps.MongoDatabase)
	blogs := blogstore.New(deps.MongoDatabase)

	// Roles are fetched per request so a promotion or demotion takes
	// effect immediately, without waiting for a token to expire.
	mgr.SetRoleFetcher(users)

	gateway := deps.PaymentGateway
	if gateway == nil {
		gateway = disabledGateway{}
	}

	r := chi.NewRouter()

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// The SPA's paths all live at the root, so features register onto
	// the shared router instead of mounting under prefixes.
	authtokenfeature.Register(r, authtokenfeature.NewHandler(mgr, logger))
	usersfeature.Register(r, usersfeature.NewHandler(users, logger), mgr)
	petsfeature.Register(r, petsfeature.NewHandler(pets, logger), mgr)
	adoptionsfeature.Register(r, adoptionsfeature.NewHandler(adoptions, pets, logger), mgr)
	campaignsfeature.Register(r, campaignsfeature.NewHandler(campaigns, logger), mgr)
	donationsfeature.Register(r, donationsfeature.NewHandler(donations, gateway, appCfg.MinDonationCents, logger), mgr)
	blogsfeature.Register(r, blogsfeature.NewHandler(blogs, logger), mgr)

	return r, nil
}

// disabledGateway stands in when no Stripe key is configured.
type disabledGateway struct{}

func (disabledGateway) CreateIntent(context.Context, int64, string) (payments.Intent, error) {
	return payments.Intent{}, payments.ErrGatewayDisabled
}
