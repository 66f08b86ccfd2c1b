// internal/app/features/donations/intent.go
package donations

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type intentRequest struct {
	Amount int64 `json:"amount"` // cents
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent. The minimum-amount
// check runs before the gateway is called.
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if req.Amount < h.MinAmount {
		httpjson.InvalidInput(w, fmt.Sprintf("minimum donation is %d cents", h.MinAmount))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	intent, err := h.Gateway.CreateIntent(ctx, req.Amount, "usd")
	if err != nil {
		httpjson.Internal(w, h.Log, "create payment intent", err)
		return
	}

	h.Log.Info("payment intent created",
		zap.String("intentId", intent.ID),
		zap.Int64("amount", req.Amount))
	httpjson.Write(w, http.StatusOK, intentResponse{ClientSecret: intent.ClientSecret})
}
