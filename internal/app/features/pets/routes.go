// internal/app/features/pets/routes.go
package pets

import (
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Register adds the catalog endpoints to the given router. Chi matches
// the static paths (/dogs, /allpets, …) before the {petCategory}/{id}
// wildcards, so registration order here is not load-bearing.
func Register(r chi.Router, h *Handler, mgr *auth.Manager) {
	r.Get("/dogs", h.ListDogs)
	r.Get("/cats", h.ListCats)
	r.Get("/allpets", h.ListPaged)
	r.Get("/{petCategory}/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(mgr.VerifyToken)
		r.Post("/addpet", h.Create)
		r.Post("/mypets", h.ListMine)
		r.Put("/updatepet/{petCategory}/{id}", h.Update)
		r.Put("/updateStatus/{petCategory}/{petId}", h.UpdateStatus)
		r.Delete("/{petCategory}/{id}", h.Delete)
	})
}

// Routes returns a standalone router with the catalog endpoints.
func Routes(h *Handler, mgr *auth.Manager) chi.Router {
	r := chi.NewRouter()
	Register(r, h, mgr)
	return r
}
