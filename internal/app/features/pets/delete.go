// internal/app/features/pets/delete.go
package pets

import (
	"context"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// Delete handles DELETE /{petCategory}/{id}. Deleting an id that no
// longer exists reports zero deletions rather than an error.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	species := chi.URLParam(r, "petCategory")
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Pets.Delete(ctx, species, id)
	if err != nil {
		h.writePetError(w, "delete pet", err)
		return
	}
	httpjson.Write(w, http.StatusOK, deletedResponse{Deleted: deleted})
}
