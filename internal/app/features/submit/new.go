// internal/app/features/submit/new.go
package submit

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/impactmy/showcase/internal/app/system/formutil"
)

// ServeNew renders the submission form.
// GET /submit
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{}
	formutil.SetBase(&data.Base, r, "Submit your organization", "/")
	templates.Render(w, r, "submit_form", data)
}
