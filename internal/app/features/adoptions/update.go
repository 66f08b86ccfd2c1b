// internal/app/features/adoptions/update.go
package adoptions

import (
	"context"
	"errors"
	"net/http"

	adoptionstore "github.com/dalemusser/pawhub/internal/app/store/adoptions"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

var allowedStatuses = map[string]struct{}{
	"pending":  {},
	"approved": {},
	"rejected": {},
}

type matchedResponse struct {
	Matched int64 `json:"matched"`
}

// UpdateStatus handles PUT /adoptrequests/{id}: the pet owner
// approving or rejecting a request.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if _, ok := allowedStatuses[req.Status]; !ok {
		httpjson.InvalidInput(w, "status must be pending, approved, or rejected")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, err := h.Requests.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, adoptionstore.ErrInvalidID) {
			httpjson.InvalidInput(w, "malformed request id")
			return
		}
		httpjson.Internal(w, h.Log, "update adoption request", err)
		return
	}
	httpjson.Write(w, http.StatusOK, matchedResponse{Matched: matched})
}

// Cancel handles DELETE /adoptrequests/{id}. The delete is scoped to
// the caller's own requests, so one user cannot cancel another's.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Requests.Delete(ctx, id, identity.Email)
	if err != nil {
		if errors.Is(err, adoptionstore.ErrInvalidID) {
			httpjson.InvalidInput(w, "malformed request id")
			return
		}
		httpjson.Internal(w, h.Log, "cancel adoption request", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
