// internal/app/features/submit/routes.go
package submit

import "github.com/go-chi/chi/v5"

// Routes mounts the submission routes under /submit.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeNew)
	r.Post("/", h.HandleCreate)
	return r
}
