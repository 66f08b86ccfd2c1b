// internal/app/features/campaigns/handler.go

// Package campaigns manages donation drives: creation, public
// listings, and the creator's own view.
package campaigns

import (
	campaignstore "github.com/dalemusser/pawhub/internal/app/store/campaigns"
	"go.uber.org/zap"
)

// Handler holds dependencies for the campaign endpoints.
type Handler struct {
	Campaigns *campaignstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a campaigns Handler.
func NewHandler(campaigns *campaignstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Campaigns: campaigns, Log: logger}
}
