package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// TokenIssuer signs session tokens for authenticated identities.
type TokenIssuer interface {
	Issue(subject string, roles []string) (string, error)
}

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	tokens TokenIssuer
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Authenticate validates username/password credentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	identity, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return identity, nil
}

// Login authenticates the credentials and issues a session token carrying
// the stored role assignments.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	identity, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(identity.Username, identity.Roles)
}
