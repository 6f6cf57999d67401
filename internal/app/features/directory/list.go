// internal/app/features/directory/list.go
package directory

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"

	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/filtering"
	"github.com/impactmy/showcase/internal/app/system/timeouts"
	"github.com/impactmy/showcase/internal/app/system/viewdata"
	"github.com/impactmy/showcase/internal/domain/models"
)

// ServeList handles GET / (with optional ?q= search and filter parameters).
// It supports HTMX partial refresh of the table when HX-Target="directory-table-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	criteria := filtering.ParseCriteria(r.URL.Query())

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	records, err := h.Store.LoadAll(ctx)
	if errors.Is(err, profiles.ErrDatasetCorrupt) {
		h.ErrLog.LogServerError(w, r, "profile dataset corrupt", err,
			"The directory data could not be read.", "/")
		return
	}
	if err != nil {
		h.ErrLog.LogUnavailable(w, r, "load profiles failed", err,
			"The directory is temporarily unavailable. Please try again shortly.", "/")
		return
	}

	items := filtering.Apply(records, criteria)
	if q != "" {
		items = searchByName(items, q)
	}

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Directory", "/"),
		Q:        q,
		Criteria: criteria,
		Options:  filtering.CollectOptions(records),
		Items:    items,
		Shown:    len(items),
		Total:    len(records),
	}
	data.Flash = h.Flash.Pop(w, r)

	// HTMX partial: just the table
	if r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == "directory-table-wrap" {
		templates.RenderSnippet(w, "directory_table", data)
		return
	}

	templates.Render(w, r, "directory_list", data)
}

// searchByName keeps records whose name or tagline contains q, compared
// case- and diacritic-insensitively.
func searchByName(records []models.OrganizationProfile, q string) []models.OrganizationProfile {
	fq := text.Fold(q)
	if fq == "" {
		return records
	}
	out := make([]models.OrganizationProfile, 0, len(records))
	for _, p := range records {
		if strings.Contains(text.Fold(p.Name), fq) || strings.Contains(text.Fold(p.Tagline), fq) {
			out = append(out, p)
		}
	}
	return out
}
