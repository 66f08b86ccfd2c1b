// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
)

// List handles GET /users, newest first. Admin only; the route chain
// enforces that before this runs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Users.ListAll(ctx)
	if err != nil {
		httpjson.Internal(w, h.Log, "list users", err)
		return
	}
	httpjson.Write(w, http.StatusOK, all)
}
