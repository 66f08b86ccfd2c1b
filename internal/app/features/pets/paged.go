// internal/app/features/pets/paged.go
package pets

import (
	"context"
	"net/http"

	petstore "github.com/dalemusser/pawhub/internal/app/store/pets"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/paging"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ListPaged handles GET /allpets?page=&limit=&filter=.
//
// The optional filter is a case-insensitive name match. It narrows the
// dog fetch only: the cat shortfall fetch and the totals are
// unfiltered (see store/pets for why that stays as-is).
func (h *Handler) ListPaged(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	limit := paging.ParseLimit(r)

	filter := bson.M{}
	if s := r.URL.Query().Get("filter"); s != "" {
		filter["name"] = bson.M{"$regex": s, "$options": "i"}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Pets.ListPaged(ctx, filter, page, limit)
	if err != nil {
		httpjson.Internal(w, h.Log, "paged pet listing", err)
		return
	}
	httpjson.Write(w, http.StatusOK, res)
}

// ListMine handles POST /mypets?page=&limit=: the caller's own pets
// from both collections, paged in memory since an owner's listings are
// few.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	page := paging.ParsePage(r)
	limit := paging.ParseLimit(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	owned, err := h.Pets.ListByAuthor(ctx, id.Email)
	if err != nil {
		httpjson.Internal(w, h.Log, "list own pets", err)
		return
	}

	total := int64(len(owned))
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := owned[start:end]
	if items == nil {
		items = []models.Pet{}
	}

	httpjson.Write(w, http.StatusOK, petstore.PagedResult{
		Items:       items,
		TotalCount:  total,
		TotalPages:  paging.TotalPages(total, limit),
		CurrentPage: page,
	})
}
