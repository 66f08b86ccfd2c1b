// internal/app/features/blogs/list.go
package blogs

import (
	"context"
	"net/http"

	"github.com/dalemusser/pawhub/internal/app/system/httpjson"
	"github.com/dalemusser/pawhub/internal/app/system/timeouts"
)

// List handles GET /blogs, newest first, comments included.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Blogs.ListAll(ctx)
	if err != nil {
		httpjson.Internal(w, h.Log, "list blogs", err)
		return
	}
	httpjson.Write(w, http.StatusOK, all)
}
