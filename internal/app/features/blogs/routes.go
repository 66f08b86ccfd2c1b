// internal/app/features/blogs/routes.go
package blogs

import (
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register adds the blog endpoints to the given router. Reading is
// open; writing takes a verified identity.
func Register(r chi.Router, h *Handler, mgr *auth.Manager) {
	r.Get("/blogs", h.List)

	r.Group(func(r chi.Router) {
		r.Use(mgr.VerifyToken)
		r.Post("/addblog", h.Create)
		r.Post("/postcomment", h.Comment)
	})
}

// Routes returns a standalone router with the blog endpoints.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()
	Register(r, h, mgr)
	return r
}
