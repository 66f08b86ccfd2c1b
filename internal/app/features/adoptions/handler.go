// internal/app/features/adoptions/handler.go

// Package adoptions takes adoption requests and serves the owner-side
// view that pairs each request with the pet it targets.
package adoptions

import (
	adoptionstore "github.com/dalemusser/pawhub/internal/app/store/adoptions"
	petstore "github.com/dalemusser/pawhub/internal/app/store/pets"
	"go.uber.org/zap"
)

// Handler holds dependencies for the adoption endpoints.
type Handler struct {
	Requests *adoptionstore.Store
	Pets     *petstore.Store
	Log      *zap.Logger
}

// NewHandler constructs an adoptions Handler.
func NewHandler(requests *adoptionstore.Store, pets *petstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Requests: requests, Pets: pets, Log: logger}
}
