package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/campusdesk/campusdesk/internal/auth"
	"github.com/campusdesk/campusdesk/internal/guard"
	"github.com/campusdesk/campusdesk/internal/registry/activities"
	"github.com/campusdesk/campusdesk/internal/registry/grades"
	"github.com/campusdesk/campusdesk/internal/registry/memberships"
	"github.com/campusdesk/campusdesk/internal/registry/students"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config
	Guard  guard.Middleware

	AuthHandler       *auth.Handler
	StudentHandler    *students.Handler
	GradeHandler      *grades.Handler
	MembershipHandler *memberships.Handler
	ActivityHandler   *activities.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)
	})
	r.Route("/students", func(r chi.Router) {
		params.StudentHandler.MountRoutes(r, params.Guard)
	})
	r.Route("/grades", func(r chi.Router) {
		params.GradeHandler.MountRoutes(r, params.Guard)
	})
	r.Route("/memberships", func(r chi.Router) {
		params.MembershipHandler.MountRoutes(r, params.Guard)
	})
	r.Route("/activities", func(r chi.Router) {
		params.ActivityHandler.MountRoutes(r, params.Guard)
	})

	return r
}
