// internal/app/features/pets/get.go
package pets

import (
	"context"
	"errors"
	"net/http"

	petstore "github.com/dalemusser/pawhub/internal/app/store/pets"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// Get handles GET /{petCategory}/{id}. The category segment is a hint:
// "catlist" reads the cat collection, anything else the dog
// collection. An id that matches nothing answers 200 with a null body;
// only a malformed id is an error.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "petCategory")
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	pet, err := h.Pets.GetByID(ctx, category, id)
	if err != nil {
		if errors.Is(err, petstore.ErrInvalidID) {
			httpjson.InvalidInput(w, "malformed pet id")
			return
		}
		httpjson.Internal(w, h.Log, "get pet", err)
		return
	}
	httpjson.Write(w, http.StatusOK, pet)
}
