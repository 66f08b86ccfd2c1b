// internal/app/features/blogs/create.go
package blogs

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/sanitize"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Body  string `json:"body"`
}

// Create handles POST /addblog. The body is user HTML and is
// sanitized before it is stored, so stored markup is always safe to
// render.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		httpjson.InvalidInput(w, "title and body are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Blogs.Create(ctx, models.Blog{
		Email: id.Email,
		Title: sanitize.HTML(req.Title),
		Image: req.Image,
		Body:  sanitize.HTML(req.Body),
	})
	if err != nil {
		httpjson.Internal(w, h.Log, "create blog", err)
		return
	}

	h.Log.Info("blog posted", zap.String("author", id.Email))
	httpjson.Write(w, http.StatusCreated, created)
}
