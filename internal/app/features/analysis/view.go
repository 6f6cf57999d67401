// internal/app/features/analysis/view.go
package analysis

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/impactmy/showcase/internal/app/features/errors"
	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/analyzer"
	"github.com/impactmy/showcase/internal/app/system/timeouts"
	"github.com/impactmy/showcase/internal/app/system/viewdata"
	"github.com/impactmy/showcase/internal/domain/models"
)

// viewData is the view model for the analysis page.
type viewData struct {
	viewdata.BaseVM

	Profile models.OrganizationProfile

	Enabled bool
	Failed  bool
	Report  analyzer.Report
}

// ServeAnalysis handles GET /company/{identifier}/analysis.
func (h *Handler) ServeAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "identifier")

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
		BaseVM:  viewdata.NewBaseVM(r, p.Name+" analysis", "/company/"+p.ID),
		Profile: p,
		Enabled: h.Analyzer.Enabled(),
	}

	if data.Enabled {
		actx, acancel := context.WithTimeout(r.Context(), timeouts.Long())
		defer acancel()

		report, err := h.Analyzer.Analyze(actx, p)
		if err != nil {
			h.Log.Warn("analysis failed", zap.String("profile", p.ID), zap.Error(err))
			data.Failed = true
		}
		data.Report = report
	}

	templates.Render(w, r, "analysis_view", data)
}
