package memberships

import (
	"github.com/go-chi/chi/v5"

	"github.com/campusdesk/campusdesk/internal/guard"
)

// MountRoutes registers membership routes guarded per operation.
func (h *Handler) MountRoutes(r chi.Router, g guard.Middleware) {
	r.With(g.Require(guard.OpMembershipsList)).Get("/", h.List)
	r.With(g.Require(guard.OpMembershipsGet)).Get("/{id}", h.Get)
	r.With(g.Require(guard.OpMembershipsCreate)).Post("/", h.Create)
	r.With(g.Require(guard.OpMembershipsUpdate)).Put("/{id}", h.Update)
	r.With(g.Require(guard.OpMembershipsDelete)).Delete("/{id}", h.Delete)
}
