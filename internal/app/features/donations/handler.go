// internal/app/features/donations/handler.go

// Package donations handles the payment flow: intent creation through
// the gateway, recording successes, and the donation queries.
package donations

import (
	donationstore "github.com/dalemusser/pawhub/internal/app/store/donations"
	"github.com/dalemusser/pawhub/internal/app/system/payments"
	"go.uber.org/zap"
)

// Handler holds dependencies for the donation endpoints.
type Handler struct {
	Donations *donationstore.Store
	Gateway   payments.Gateway
	MinAmount int64 // cents; intents below this are rejected
	Log       *zap.Logger
}

// NewHandler constructs a donations Handler.
func NewHandler(donations *donationstore.Store, gateway payments.Gateway, minAmount int64, logger *zap.Logger) *Handler {
	return &Handler{
		Donations: donations,
		Gateway:   gateway,
		MinAmount: minAmount,
		Log:       logger,
	}
}
