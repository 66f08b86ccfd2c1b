// internal/app/features/donations/queries.go
package donations

import (
	"context"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
)

// Mine handles GET /myDonations: every donation record carrying an
// entry under the caller's email.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Donations.ByDonator(ctx, id.Email)
	if err != nil {
		httpjson.Internal(w, h.Log, "list own donations", err)
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// CampaignDonators handles GET /mycampaigns-donators: the donator
// roll-ups for campaigns the caller created.
func (h *Handler) CampaignDonators(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Donations.ByCreator(ctx, id.Email)
	if err != nil {
		httpjson.Internal(w, h.Log, "list campaign donators", err)
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}
