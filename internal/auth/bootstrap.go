package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// EnsureAdmin seeds one administrative identity when the credential store
// has none under the given username. Existing accounts are left untouched.
func EnsureAdmin(ctx context.Context, repo Repository, logger *slog.Logger, username, password string) error {
	_, err := repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrInvalidCredentials) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	id, err := repo.Create(ctx, username, string(hash), []string{shared.RoleAdmin})
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Info("admin identity created",
			slog.String("username", username), slog.Int64("id", id))
	}
	return nil
}
