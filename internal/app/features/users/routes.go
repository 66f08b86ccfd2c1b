// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register adds the user endpoints to the given router. Listing users
// takes a verified admin; registration and the role check are open.
func Register(r chi.Router, h *Handler, mgr *auth.Manager) {
	r.Post("/user", h.Create)
	r.Get("/admin/check/{email}", h.AdminCheck)

	r.Group(func(r chi.Router) {
		r.Use(mgr.VerifyToken, mgr.RequireAdmin)
		r.Get("/users", h.List)
	})
}

// Routes returns a standalone router with the user endpoints.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()
	Register(r, h, mgr)
	return r
}
