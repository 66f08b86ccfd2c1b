// internal/app/features/users/admincheck.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type adminCheckResponse struct {
	Admin bool `json:"admin"`
}

// AdminCheck handles GET /admin/check/{email}. An unknown email is
// simply not an admin; the lookup never 404s.
func (h *Handler) AdminCheck(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		httpjson.InvalidInput(w, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Users.IsAdmin(ctx, email)
	if err != nil {
		httpjson.Internal(w, h.Log, "admin check", err)
		return
	}
	httpjson.Write(w, http.StatusOK, adminCheckResponse{Admin: admin})
}
