// internal/app/features/authtoken/routes.go
package authtoken

import "github.com/go-chi/chi/v5"

// Register adds the token endpoints to the given router. They live at
// the API root so the paths stay /jwt and /logout.
func Register(r chi.Router, h *Handler) {
	r.Post("/jwt", h.Issue)
	r.Post("/logout", h.Logout)
}

// Routes returns a standalone router with the token endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	Register(r, h)
	return r
}
