// internal/app/features/adoptions/routes.go
package adoptions

import (
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register adds the adoption endpoints to the given router. Everything
// here takes a verified identity.
func Register(r chi.Router, h *Handler, mgr *auth.Manager) {
	r.Group(func(r chi.Router) {
		r.Use(mgr.VerifyToken)
		r.Post("/pets/adoption", h.Create)
		r.Post("/adoptrequests", h.OwnerView)
		r.Put("/adoptrequests/{id}", h.UpdateStatus)
		r.Delete("/adoptrequests/{id}", h.Cancel)
	})
}

// Routes returns a standalone router with the adoption endpoints.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()
	Register(r, h, mgr)
	return r
}
