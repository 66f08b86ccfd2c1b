// internal/app/features/authtoken/logout.go
package authtoken

import (
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
)

// Logout handles POST /logout by expiring the credential cookie.
// Logging out without a cookie is fine; the response is the same.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.ClearTokenCookie(w)
	httpjson.Write(w, http.StatusOK, successResponse{Success: true})
}
