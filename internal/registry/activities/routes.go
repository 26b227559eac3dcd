package activities

import (
	"github.com/go-chi/chi/v5"

	"github.com/campusdesk/campusdesk/internal/guard"
)

// MountRoutes registers activity routes guarded per operation.
func (h *Handler) MountRoutes(r chi.Router, g guard.Middleware) {
	r.With(g.Require(guard.OpActivitiesList)).Get("/", h.List)
	r.With(g.Require(guard.OpActivitiesCreate)).Post("/", h.Create)
	r.With(g.Require(guard.OpActivitiesUpdate)).Put("/{id}", h.Update)
	r.With(g.Require(guard.OpActivitiesDelete)).Delete("/{id}", h.Delete)
}
