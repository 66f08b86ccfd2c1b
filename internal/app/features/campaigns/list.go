// internal/app/features/campaigns/list.go
package campaigns

import (
	"context"
	"errors"
	"net/http"

	campaignstore "github.com/dalemusser/pawhub/internal/app/store/campaigns"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/paging"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// List handles GET /campaigns: every campaign, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Campaigns.ListAll(ctx)
	if err != nil {
		httpjson.Internal(w, h.Log, "list campaigns", err)
		return
	}
	httpjson.Write(w, http.StatusOK, all)
}

// ListPaged handles GET /allcampaigns?page=&limit=.
func (h *Handler) ListPaged(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	limit := paging.ParseLimit(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Campaigns.ListPaged(ctx, page, limit)
	if err != nil {
		httpjson.Internal(w, h.Log, "paged campaign listing", err)
		return
	}
	httpjson.Write(w, http.StatusOK, res)
}

// Get handles GET /campaigns/{id}. A missing campaign answers 200 with
// a null body; only a malformed id is an error.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Campaigns.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, campaignstore.ErrInvalidID) {
			httpjson.InvalidInput(w, "malformed campaign id")
			return
		}
		httpjson.Internal(w, h.Log, "get campaign", err)
		return
	}
	httpjson.Write(w, http.StatusOK, c)
}

// ListMine handles GET /mycampaigns: the caller's own campaigns.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mine, err := h.Campaigns.ListByEmail(ctx, id.Email)
	if err != nil {
		httpjson.Internal(w, h.Log, "list own campaigns", err)
		return
	}
	httpjson.Write(w, http.StatusOK, mine)
}
