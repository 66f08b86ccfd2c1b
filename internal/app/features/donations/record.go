// internal/app/features/donations/record.go
package donations

import (
	"context"
	"net/http"
	"strings"

	donationstore "github.com/dalemusser/pawhub/internal/app/store/donations"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type recordRequest struct {
	CampaignID    string `json:"campaignId"`
	Email         string `json:"email"` // campaign creator
	PetName       string `json:"petName"`
	PetPicture    string `json:"petPicture"`
	DonnerName    string `json:"donnerName"`
	Amount        int64  `json:"amount"` // cents
	MaxDonation   int64  `json:"maxDonation"`
	TransactionID string `json:"transactionId"`
}

// Record handles POST /paymentsucess (the SPA's spelling). One donation
// document per campaign: the first success creates it, every success
// appends the caller's donator entry. The caller's verified email is
// the donator key so "my donations" can find it later.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	var req recordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.CampaignID) == "" {
		httpjson.InvalidInput(w, "campaignId is required")
		return
	}
	if req.Amount <= 0 {
		httpjson.InvalidInput(w, "amount must be positive")
		return
	}
	if req.TransactionID == "" {
		// Older SPA builds post without the gateway's transaction id.
		req.TransactionID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	donation, err := h.Donations.Apply(ctx, donationstore.Record{
		CampaignID:      req.CampaignID,
		Email:           req.Email,
		PetName:         req.PetName,
		PetPicture:      req.PetPicture,
		DonnerName:      req.DonnerName,
		CurrentDonation: req.Amount,
		MaxDonation:     req.MaxDonation,
		TransactionID:   req.TransactionID,
		Status:          "succeeded",
		Donator: models.Donator{
			DisplayName: id.Email,
			Amount:      req.Amount,
		},
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "record donation", err)
		return
	}

	h.Log.Info("donation recorded",
		zap.String("campaignId", req.CampaignID),
		zap.String("donator", id.Email),
		zap.Int64("amount", req.Amount))
	httpjson.Write(w, http.StatusOK, donation)
}
