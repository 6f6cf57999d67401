// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - Every validation problem, so the user can fix them in one pass
// - All the context data needed for the form (dropdowns, etc.)
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type submitData struct {
//		formutil.Base
//		Name    string
//		Website string
//	}
//
//	// In your handler:
//	data := submitData{Name: name, Website: website}
//	formutil.SetBase(&data.Base, r, "Submit", "/")
//	data.SetFieldErrors(result)
//	templates.Render(w, r, "submit_form", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"

	"github.com/impactmy/showcase/internal/app/system/inputval"
	"github.com/impactmy/showcase/internal/domain/models"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	SiteName    string
	Title       string
	BackURL     string
	CurrentPath string
	Flash       string

	Error       template.HTML
	FieldErrors map[string]string
}

// SetBase populates the common Base fields from the request context.
//
// Parameters:
//   - b: pointer to the Base struct to populate
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.SiteName = models.DefaultSiteName
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
}

// SetError sets the error message on a Base struct.
// This is a convenience method for setting Error as template.HTML.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}

// SetFieldErrors records every failing field from a validation result so
// the form can annotate each input and show a summary.
func (b *Base) SetFieldErrors(result *inputval.Result) {
	if result == nil || !result.HasErrors() {
		return
	}
	b.Error = template.HTML("Please correct the problems below.")
	b.FieldErrors = map[string]string{}
	for _, fe := range result.Fields() {
		if _, ok := b.FieldErrors[fe.Field]; !ok {
			b.FieldErrors[fe.Field] = fe.Message
		}
	}
}

// ErrorFor returns the recorded message for a form field, or "".
// Value receiver: templates call this on form data passed by value.
func (b Base) ErrorFor(field string) string {
	return b.FieldErrors[field]
}
