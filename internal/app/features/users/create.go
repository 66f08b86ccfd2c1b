// internal/app/features/users/create.go
package users

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/pawhub/internal/app/store/users"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Create handles POST /user. Registration is open; the role field is
// never taken from the request, so every new account starts as an
// ordinary user. A repeat registration for the same email answers 409.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		httpjson.InvalidInput(w, "email is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Users.Create(ctx, models.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Conflict(w, "a user with this email already exists")
			return
		}
		httpjson.Internal(w, h.Log, "create user", err)
		return
	}

	h.Log.Info("user registered", zap.String("email", created.Email))
	httpjson.Write(w, http.StatusCreated, created)
}
