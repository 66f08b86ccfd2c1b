// internal/app/features/adoptions/ownerview.go
package adoptions

import (
	"context"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// OwnerView handles POST /adoptrequests: every adoption request that
// targets one of the caller's pets, paired with that pet. Requests
// whose pet no longer resolves are dropped from the view, not errors.
func (h *Handler) OwnerView(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Requests.JoinOwnerRequests(ctx, h.Pets, id.Email)
	if err != nil {
		httpjson.Internal(w, h.Log, "owner request view", err)
		return
	}
	if res.Skipped > 0 {
		h.Log.Debug("dropped requests for missing pets",
			zap.String("owner", id.Email),
			zap.Int("skipped", res.Skipped))
	}
	httpjson.Write(w, http.StatusOK, res.Matches)
}
