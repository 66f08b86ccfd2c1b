// internal/app/features/blogs/handler.go

// Package blogs serves user-authored posts and their comment threads.
// All user HTML passes through the sanitizer on the way in.
package blogs

import (
	blogstore "github.com/dalemusser/pawhub/internal/app/store/blogs"
	"go.uber.org/zap"
)

// Handler holds dependencies for the blog endpoints.
type Handler struct {
	Blogs *blogstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a blogs Handler.
func NewHandler(blogs *blogstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Blogs: blogs, Log: logger}
}
