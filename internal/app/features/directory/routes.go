// internal/app/features/directory/routes.go
package directory

import "github.com/go-chi/chi/v5"

// Routes mounts the directory routes at the site root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
