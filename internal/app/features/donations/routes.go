// internal/app/features/donations/routes.go
package donations

import (
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register adds the payment endpoints to the given router. Everything
// here takes a verified identity.
func Register(r chi.Router, h *Handler, mgr *auth.Manager) {
	r.Group(func(r chi.Router) {
		r.Use(mgr.VerifyToken)
		r.Post("/create-payment-intent", h.CreateIntent)
		r.Post("/paymentsucess", h.Record)
		r.Get("/myDonations", h.Mine)
		r.Get("/mycampaigns-donators", h.CampaignDonators)
	})
}

// Routes returns a standalone router with the payment endpoints.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()
	Register(r, h, mgr)
	return r
}
