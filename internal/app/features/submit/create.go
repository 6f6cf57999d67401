// internal/app/features/submit/create.go
package submit

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/formutil"
	"github.com/impactmy/showcase/internal/app/system/inputval"
	"github.com/impactmy/showcase/internal/app/system/limits"
	"github.com/impactmy/showcase/internal/app/system/ratelimit"
	"github.com/impactmy/showcase/internal/app/system/timeouts"
)

// HandleCreate processes the submission form.
// POST /submit
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.Limiter.Allow(ratelimit.ClientIP(r)) {
		h.Log.Warn("submission rate limited", zap.String("ip", ratelimit.ClientIP(r)))
		data := formData{}
		formutil.SetBase(&data.Base, r, "Submit your organization", "/")
		data.SetError("You're submitting too quickly. Please wait a minute and try again.")
		w.WriteHeader(http.StatusTooManyRequests)
		templates.Render(w, r, "submit_form", data)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxSubmitFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/submit")
		return
	}

	values := parseFormValues(r.PostForm)

	renderWithErrors := func(result *inputval.Result) {
		data := formData{Values: values}
		formutil.SetBase(&data.Base, r, "Submit your organization", "/")
		data.SetFieldErrors(result)
		templates.Render(w, r, "submit_form", data)
	}

	profile, result := buildProfile(values, time.Now().UTC())
	if result.HasErrors() {
		renderWithErrors(result)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Store.Append(ctx, profile)
	switch {
	case errors.Is(err, profiles.ErrDuplicateIdentifier):
		result.Add("name", "Organization name",
			"An organization with that name is already listed.")
		renderWithErrors(result)
		return
	case errors.Is(err, profiles.ErrDatasetCorrupt):
		h.ErrLog.LogServerError(w, r, "append to corrupt dataset", err,
			"Submissions are temporarily unavailable. Please try again later.", "/submit")
		return
	case err != nil:
		h.ErrLog.LogUnavailable(w, r, "append profile failed", err,
			"We couldn't save your submission. Please try again shortly.", "/submit")
		return
	}

	h.Log.Info("profile submitted", zap.String("id", profile.ID))
	h.Flash.Set(w, r, "Thanks! "+profile.Name+" is now listed.")
	http.Redirect(w, r, "/company/"+profile.ID, http.StatusSeeOther)
}
