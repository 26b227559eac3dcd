package grades

import (
	"github.com/go-chi/chi/v5"

	"github.com/campusdesk/campusdesk/internal/guard"
)

// MountRoutes registers grade routes guarded per operation.
func (h *Handler) MountRoutes(r chi.Router, g guard.Middleware) {
	r.With(g.Require(guard.OpGradesList)).Get("/", h.List)
	r.With(g.Require(guard.OpGradesGet)).Get("/{id}", h.Get)
	r.With(g.Require(guard.OpGradesCreate)).Post("/", h.Create)
	r.With(g.Require(guard.OpGradesUpdate)).Put("/{id}", h.Update)
	r.With(g.Require(guard.OpGradesDelete)).Delete("/{id}", h.Delete)
}
