// internal/app/features/blogs/comment.go
package blogs

import (
	"context"
	"errors"
	"net/http"
	"strings"

	blogstore "github.com/dalemusser/pawhub/internal/app/store/blogs"
	"github.com/dalemusser/pawhub/internal/app/system/auth"
	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/sanitize"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
	"github.com/dalemusser/pawhub/internal/domain/models"
)

type commentRequest struct {
	BlogID  string `json:"blogId"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

// Comment handles POST /postcomment: append one sanitized comment to
// a blog's thread. Commenting on a blog that no longer exists reports
// zero matches rather than an error.
func (h *Handler) Comment(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		httpjson.Unauthorized(w, "missing credential")
		return
	}

	var req commentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.InvalidInput(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Comment) == "" {
		httpjson.InvalidInput(w, "comment is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	matched, err := h.Blogs.AppendComment(ctx, req.BlogID, models.BlogComment{
		Email:   id.Email,
		Name:    req.Name,
		Comment: sanitize.HTML(req.Comment),
	})
	if err != nil {
		if errors.Is(err, blogstore.ErrInvalidID) {
			httpjson.InvalidInput(w, "malformed blog id")
			return
		}
		httpjson.Internal(w, h.Log, "post comment", err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]int64{"matched": matched})
}
