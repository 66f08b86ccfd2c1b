// internal/app/features/pets/update.go
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

type matchedResponse struct {
	Matched int64 `json:"matched"`
}

// Update handles PUT /updatepet/{petCategory}/{id}. Only allow-listed
// fields are written; species and author can never change through this
// route.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	species := chi.URLParam(r, "petCategory")
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := httpjson.Decode(r, &fields); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, err := h.Pets.Update(ctx, species, id, fields)
	if err != nil {
		h.writePetError(w, "update pet", err)
		return
	}
	httpjson.Write(w, http.StatusOK, matchedResponse{Matched: matched})
}

// UpdateStatus handles PUT /updateStatus/{petCategory}/{petId}.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	species := chi.URLParam(r, "petCategory")
	id := chi.URLParam(r, "petId")

	var req struct {
		Status string `json:"status"`
	}
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if req.Status == "" {
		httpjson.InvalidInput(w, "status is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, err := h.Pets.UpdateStatus(ctx, species, id, req.Status)
	if err != nil {
		h.writePetError(w, "update pet status", err)
		return
	}
	httpjson.Write(w, http.StatusOK, matchedResponse{Matched: matched})
}

func (h *Handler) writePetError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, petstore.ErrInvalidID):
		httpjson.InvalidInput(w, "malformed pet id")
	case errors.Is(err, petstore.ErrUnknownSpecies):
		httpjson.InvalidInput(w, `species must be "dog" or "cat"`)
	default:
		httpjson.Internal(w, h.Log, op, err)
	}
}
