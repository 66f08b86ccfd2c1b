// internal/app/features/users/handler.go

// Package users registers accounts and answers role queries.
package users

import (
	userstore "github.com/dalemusser/pawhub/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler holds dependencies for the user endpoints.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}
