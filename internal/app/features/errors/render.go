// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/impactmy/showcase/internal/domain/models"
)

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", pageData{
		SiteName:    models.DefaultSiteName,
		Title:       title,
		Message:     msg,
		BackURL:     backURL,
		CurrentPath: httpnav.CurrentPath(r),
	})
}

// RenderNotFound shows a friendly "not found" page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly "bad request" page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

// RenderUnavailable shows a "temporarily unavailable" page. Used when the
// profile dataset cannot be read.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusServiceUnavailable, "Temporarily unavailable", msg, backURL)
}

// HTMXError writes a plain-text error for HTMX requests and falls back to
// the given full-page render otherwise.
func HTMXError(w http.ResponseWriter, r *http.Request, status int, msg string, fullPage func()) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(msg))
		return
	}
	fullPage()
}
