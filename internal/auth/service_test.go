package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusdesk/campusdesk/internal/auth"
	"github.com/campusdesk/campusdesk/internal/shared"
	"github.com/campusdesk/campusdesk/internal/token"
)

type stubRepo struct {
	identities map[string]*auth.Identity
	nextID     int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{identities: make(map[string]*auth.Identity), nextID: 1}
}

func (s *stubRepo) FindByUsername(ctx context.Context, username string) (*auth.Identity, error) {
	identity, ok := s.identities[username]
	if !ok {
		return nil, shared.ErrInvalidCredentials
	}
	return identity, nil
}

func (s *stubRepo) Create(ctx context.Context, username, passwordHash string, roles []string) (int64, error) {
	id := s.nextID
	s.nextID++
	s.identities[username] = &auth.Identity{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Roles:        roles,
	}
	return id, nil
}

func seedIdentity(t *testing.T, repo *stubRepo, username, password string, roles ...string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), username, string(hash), roles)
	require.NoError(t, err)
}

func TestLoginIssuesValidatableToken(t *testing.T) {
	repo := newStubRepo()
	seedIdentity(t, repo, "admin", "admin123!", shared.RoleAdmin, shared.RoleUser)
	tokens := token.NewService("test-secret")
	service := auth.NewService(repo, tokens)

	signed, err := service.Login(context.Background(), "admin", "admin123!")
	require.NoError(t, err)

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, []string{shared.RoleAdmin, shared.RoleUser}, claims.Roles)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubRepo()
	seedIdentity(t, repo, "admin", "admin123!", shared.RoleAdmin)
	service := auth.NewService(repo, token.NewService("test-secret"))

	_, err := service.Login(context.Background(), "admin", "wrong-password")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	service := auth.NewService(newStubRepo(), token.NewService("test-secret"))

	_, err := service.Login(context.Background(), "ghost", "irrelevant")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	repo := newStubRepo()

	require.NoError(t, auth.EnsureAdmin(context.Background(), repo, nil, "admin", "admin123!"))
	seeded := repo.identities["admin"]
	require.NotNil(t, seeded)
	assert.Equal(t, []string{shared.RoleAdmin}, seeded.Roles)

	// Second run must not replace the existing account.
	require.NoError(t, auth.EnsureAdmin(context.Background(), repo, nil, "admin", "different"))
	assert.Equal(t, seeded, repo.identities["admin"])
}
