// internal/app/features/pets/list.go
package pets

import (
	"context"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
)

// ListDogs handles GET /dogs: the full dog collection in store order.
func (h *Handler) ListDogs(w http.ResponseWriter, r *http.Request) {
	h.listSpecies(w, r, "dog")
}

// ListCats handles GET /cats.
func (h *Handler) ListCats(w http.ResponseWriter, r *http.Request) {
	h.listSpecies(w, r, "cat")
}

func (h *Handler) listSpecies(w http.ResponseWriter, r *http.Request, species string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Pets.ListAll(ctx, species)
	if err != nil {
		httpjson.Internal(w, h.Log, "list "+species+"s", err)
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}
