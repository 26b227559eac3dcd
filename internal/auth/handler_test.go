package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusdesk/campusdesk/internal/auth"
	"github.com/campusdesk/campusdesk/internal/shared"
	"github.com/campusdesk/campusdesk/internal/token"
)

func newLoginHandler(t *testing.T) (*auth.Handler, *token.Service) {
	t.Helper()
	repo := newStubRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), "admin", string(hash), []string{shared.RoleAdmin})
	require.NoError(t, err)

	tokens := token.NewService("test-secret")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewHandler(logger, auth.NewService(repo, tokens)), tokens
}

func postLogin(handler *auth.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler.HandleLoginForTest(res, req)
	return res
}

func TestLoginEndpointSuccess(t *testing.T) {
	handler, tokens := newLoginHandler(t)

	res := postLogin(handler, `{"username":"admin","password":"admin123!"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))

	claims, err := tokens.Validate(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, []string{shared.RoleAdmin}, claims.Roles)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	handler, _ := newLoginHandler(t)

	res := postLogin(handler, `{"username":"admin","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestLoginEndpointValidation(t *testing.T) {
	handler, _ := newLoginHandler(t)

	res := postLogin(handler, `{"username":"","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestLoginEndpointMalformedBody(t *testing.T) {
	handler, _ := newLoginHandler(t)

	res := postLogin(handler, `{"username":`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}
