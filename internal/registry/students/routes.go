package students

import (
	"github.com/go-chi/chi/v5"

	"github.com/campusdesk/campusdesk/internal/guard"
)

// MountRoutes registers student routes guarded per operation.
func (h *Handler) MountRoutes(r chi.Router, g guard.Middleware) {
	r.With(g.Require(guard.OpStudentsList)).Get("/", h.List)
	r.With(g.Require(guard.OpStudentsGet)).Get("/{id}", h.Get)
	r.With(g.Require(guard.OpStudentsRegister)).Post("/", h.Register)
	r.With(g.Require(guard.OpStudentsUpdate)).Put("/{id}", h.Update)
	r.With(g.Require(guard.OpStudentsDelete)).Delete("/{id}", h.Delete)
}
