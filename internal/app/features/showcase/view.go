// internal/app/features/showcase/view.go
package showcase

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	uierrors "github.com/impactmy/showcase/internal/app/features/errors"
	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/htmlsanitize"
	"github.com/impactmy/showcase/internal/app/system/timeouts"
	"github.com/impactmy/showcase/internal/app/system/viewdata"
)

// ServeView handles GET /company/{identifier}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "identifier")
	if id == "" {
		uierrors.RenderBadRequest(w, r, "Missing organization identifier.", "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, profiles.ErrNotFound) {
		uierrors.RenderNotFound(w, r, "We couldn't find that organization.", "/")
		return
	}
	if errors.Is(err, profiles.ErrDatasetCorrupt) {
		h.ErrLog.LogServerError(w, r, "profile dataset corrupt", err,
			"This page could not be loaded.", "/")
		return
	}
	if err != nil {
		h.ErrLog.LogUnavailable(w, r, "load profile failed", err,
			"This page is temporarily unavailable. Please try again shortly.", "/")
		return
	}

	data := viewData{
		BaseVM:          viewdata.NewBaseVM(r, p.Name, "/"),
		Profile:         p,
		AboutHTML:       htmlsanitize.SanitizeToHTML(p.About),
		AnalysisEnabled: h.AnalysisEnabled,
	}
	data.Flash = h.Flash.Pop(w, r)

	templates.Render(w, r, "showcase_view", data)
}
