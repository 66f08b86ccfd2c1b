// internal/app/features/campaigns/create.go
package campaigns

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	PetName          string    `json:"petName"`
	PetPicture       string    `json:"petPicture"`
	MaxDonation      int64     `json:"maxDonation"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	LastDate         time.Time `json:"lastDate"`
}

// Create handles POST /createcampain. The route keeps the SPA's
// misspelling; the creator is the verified caller, never the body.
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
	if strings.TrimSpace(req.PetName) == "" {
		httpjson.InvalidInput(w, "petName is required")
		return
	}
	if req.MaxDonation <= 0 {
		httpjson.InvalidInput(w, "maxDonation must be positive")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Campaigns.Create(ctx, models.Campaign{
		Email:            id.Email,
		PetName:          req.PetName,
		PetPicture:       req.PetPicture,
		MaxDonation:      req.MaxDonation,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		LastDate:         req.LastDate,
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "create campaign", err)
		return
	}

	h.Log.Info("campaign created",
		zap.String("creator", id.Email),
		zap.String("petName", created.PetName))
	httpjson.Write(w, http.StatusCreated, created)
}
