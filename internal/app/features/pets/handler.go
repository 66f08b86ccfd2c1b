// internal/app/features/pets/handler.go

// Package pets serves the catalog: per-species listings, the merged
// paged listing, and pet CRUD for authenticated listers.
package pets

import (
	petstore "github.com/dalemusser/pawhub/internal/app/store/pets"
	"go.uber.org/zap"
)

// Handler holds dependencies for the pet endpoints.
type Handler struct {
	Pets *petstore.Store
	Log  *zap.Logger
}

// NewHandler constructs a pets Handler.
func NewHandler(pets *petstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Pets: pets, Log: logger}
}
