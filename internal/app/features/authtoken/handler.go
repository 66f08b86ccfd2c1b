// internal/app/features/authtoken/handler.go

// Package authtoken issues and revokes the credential cookie. There is
// no password check here: the SPA authenticates with its identity
// provider and exchanges the verified email for a first-party token.
package authtoken

import (
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Handler holds dependencies for the token endpoints.
type Handler struct {
	Auth   *auth.Manager
	Limits *ratelimit.IssueLimiter
	Log    *zap.Logger
}

// NewHandler constructs an authtoken Handler.
func NewHandler(mgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:   mgr,
		Limits: ratelimit.NewIssueLimiter(),
		Log:    logger,
	}
}
