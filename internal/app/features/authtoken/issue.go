// internal/app/features/authtoken/issue.go
package authtoken

import (
	"net/http"
	"strings"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type issueRequest struct {
	Email string `json:"email"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Issue handles POST /jwt. It signs a token for the posted email and
// sets it as the credential cookie.
func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		httpjson.InvalidInput(w, "email is required")
		return
	}

	if ok, reason := h.Limits.Check(r, req.Email); !ok {
		httpjson.RateLimited(w, reason)
		return
	}

	token, err := h.Auth.IssueToken(req.Email)
	if err != nil {
		httpjson.Internal(w, h.Log, "issue token", err)
		return
	}
	h.Auth.SetTokenCookie(w, token)
	h.Log.Debug("issued credential", zap.String("email", req.Email))
	httpjson.Write(w, http.StatusOK, successResponse{Success: true})
}
