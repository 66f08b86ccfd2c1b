// internal/app/features/adoptions/create.go
package adoptions

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	PetID   string `json:"petId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Create handles POST /pets/adoption. The pet id is taken as given:
// nothing checks that the pet exists, and the owner-side join later
// skips requests whose pet is gone.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.PetID) == "" {
		httpjson.InvalidInput(w, "petId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Requests.Create(ctx, models.AdoptionRequest{
		PetID:   req.PetID,
		Email:   id.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "create adoption request", err)
		return
	}

	h.Log.Info("adoption requested",
		zap.String("petId", created.PetID),
		zap.String("requester", id.Email))
	httpjson.Write(w, http.StatusCreated, created)
}
