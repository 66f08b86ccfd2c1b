// internal/app/features/campaigns/routes.go
package campaigns

import (
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register adds the campaign endpoints to the given router.
func Register(r chi.Router, h *Handler, mgr *auth.Manager) {
	r.Get("/campaigns", h.List)
	r.Get("/allcampaigns", h.ListPaged)
	r.Get("/campaigns/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(mgr.VerifyToken)
		r.Post("/createcampain", h.Create)
		r.Get("/mycampaigns", h.ListMine)
	})
}

// Routes returns a standalone router with the campaign endpoints.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()
	Register(r, h, mgr)
	return r
}
