package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/guard"
	"github.com/campusdesk/campusdesk/internal/shared"
	"github.com/campusdesk/campusdesk/internal/token"
)

func newGuard(t *testing.T) (guard.Middleware, *token.Service) {
	t.Helper()
	tokens := token.NewService("test-secret")
	return guard.Middleware{Tokens: tokens}, tokens
}

func protect(m guard.Middleware, operation string, captured **shared.Principal) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			*captured = shared.PrincipalFromContext(r.Context())
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return m.Require(operation)(inner)
}

func TestMissingTokenUnauthenticated(t *testing.T) {
	m, _ := newGuard(t)
	handler := protect(m, guard.OpStudentsList, nil)

	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestInvalidTokenUnauthenticated(t *testing.T) {
	m, _ := newGuard(t)
	handler := protect(m, guard.OpStudentsList, nil)

	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestAdminOnlyOperationForbiddenForUserRole(t *testing.T) {
	m, tokens := newGuard(t)
	handler := protect(m, guard.OpActivitiesCreate, nil)

	signed, err := tokens.Issue("jane", []string{shared.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/activities", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestIntersectingRolePassesAndAttachesPrincipal(t *testing.T) {
	m, tokens := newGuard(t)
	var principal *shared.Principal
	handler := protect(m, guard.OpStudentsRegister, &principal)

	signed, err := tokens.Issue("jane", []string{shared.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/students", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusNoContent, res.Code)
	require.NotNil(t, principal)
	assert.Equal(t, "jane", principal.Subject)
	assert.True(t, principal.HasRole(shared.RoleUser))
}

func TestUnknownOperationRejected(t *testing.T) {
	m, tokens := newGuard(t)
	handler := protect(m, "no.such.operation", nil)

	signed, err := tokens.Issue("root", []string{shared.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestRoleTableDeclaresEveryOperation(t *testing.T) {
	ops := []string{
		guard.OpStudentsList, guard.OpStudentsGet, guard.OpStudentsRegister,
		guard.OpStudentsUpdate, guard.OpStudentsDelete,
		guard.OpActivitiesList, guard.OpActivitiesCreate, guard.OpActivitiesUpdate,
		guard.OpActivitiesDelete,
		guard.OpMembershipsList, guard.OpMembershipsGet, guard.OpMembershipsCreate,
		guard.OpMembershipsUpdate, guard.OpMembershipsDelete,
		guard.OpGradesList, guard.OpGradesGet, guard.OpGradesCreate,
		guard.OpGradesUpdate, guard.OpGradesDelete,
	}
	for _, op := range ops {
		assert.NotEmpty(t, guard.RolesFor(op), "operation %s", op)
	}
}
