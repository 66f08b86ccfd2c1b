// internal/app/features/pets/create.go
package pets

import (
	"context"
	"errors"
	"net/http"
	"strings"

	petstore "github.com/dalemusser/pawhub/internal/app/store/pets"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.uber.org/zap"
)

// Create handles POST /addpet. The caller's verified email becomes the
// author; any author fields in the body beyond name and photo are
// ignored.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	var pet models.Pet
	if err := httpjson.Decode(r, &pet); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if strings.TrimSpace(pet.Name) == "" {
		httpjson.InvalidInput(w, "pet name is required")
		return
	}
	pet.Author.Email = id.Email

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Pets.Create(ctx, pet)
	if err != nil {
		if errors.Is(err, petstore.ErrUnknownSpecies) {
			httpjson.InvalidInput(w, `species must be "dog" or "cat"`)
			return
		}
		httpjson.Internal(w, h.Log, "create pet", err)
		return
	}

	h.Log.Info("pet listed",
		zap.String("species", string(created.Species)),
		zap.String("author", id.Email))
	httpjson.Write(w, http.StatusCreated, created)
}
