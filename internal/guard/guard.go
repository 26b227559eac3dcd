// Package guard enforces token authentication and per-operation role
// requirements on inbound requests.
package guard

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/campusdesk/campusdesk/internal/platform/httpx"
	"github.com/campusdesk/campusdesk/internal/shared"
	"github.com/campusdesk/campusdesk/internal/token"
)

// Validator verifies a session token and returns its claims.
type Validator interface {
	Validate(tokenString string) (*token.Claims, error)
}

// Middleware wires access-guard helpers for HTTP handlers.
type Middleware struct {
	Tokens Validator
	Logger *slog.Logger
}

// Require resolves the role-requirement table for the named operation and
// returns middleware enforcing it.
func (m Middleware) Require(operation string) func(http.Handler) http.Handler {
	roles := RolesFor(operation)
	if len(roles) == 0 && m.Logger != nil {
		m.Logger.Warn("operation has no declared roles, all requests will be rejected",
			slog.String("operation", operation))
	}
	return m.RequireAny(roles...)
}

// RequireAny ensures the request carries a valid token whose role claims
// intersect the required set. The resolved principal is attached to the
// request context for downstream use.
func (m Middleware) RequireAny(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httpx.RespondError(w, shared.ErrUnauthenticated)
				return
			}

			claims, err := m.Tokens.Validate(raw)
			if err != nil {
				if m.Logger != nil {
					m.Logger.Warn("token rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
				}
				httpx.RespondError(w, shared.ErrUnauthenticated)
				return
			}

			if len(roles) == 0 || !shared.HasAnyRole(claims.Roles, roles) {
				httpx.RespondError(w, shared.ErrForbidden)
				return
			}

			principal := &shared.Principal{Subject: claims.Subject, Roles: claims.Roles}
			next.ServeHTTP(w, r.WithContext(shared.ContextWithPrincipal(r.Context(), principal)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(value)
}
