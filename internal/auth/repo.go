package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// Repository defines persistence operations for the credential store.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Identity, error)
	Create(ctx context.Context, username, passwordHash string, roles []string) (int64, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByUsername fetches an identity and its role names.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*Identity, error) {
	const query = `
		SELECT id, username, password_hash, created_at, updated_at
		FROM identities
		WHERE username = $1`

	var identity Identity
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&identity.ID, &identity.Username, &identity.PasswordHash,
		&identity.CreatedAt, &identity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, &shared.PersistenceError{Op: "auth: find identity", Err: err}
	}

	const roleQuery = `
		SELECT r.name
		FROM roles r
		JOIN identity_roles ir ON ir.role_id = r.id
		WHERE ir.identity_id = $1
		ORDER BY r.name`

	rows, err := r.pool.Query(ctx, roleQuery, identity.ID)
	if err != nil {
		return nil, &shared.PersistenceError{Op: "auth: load roles", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &shared.PersistenceError{Op: "auth: scan role", Err: err}
		}
		identity.Roles = append(identity.Roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &shared.PersistenceError{Op: "auth: iterate roles", Err: err}
	}

	return &identity, nil
}

// Create inserts an identity and links it to the named roles, creating any
// role rows that do not exist yet.
func (r *PGRepository) Create(ctx context.Context, username, passwordHash string, roles []string) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, &shared.PersistenceError{Op: "auth: begin", Err: err}
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO identities (username, password_hash) VALUES ($1, $2) RETURNING id`,
		username, passwordHash,
	).Scan(&id)
	if err != nil {
		return 0, &shared.PersistenceError{Op: "auth: insert identity", Err: err}
	}

	for _, role := range roles {
		var roleID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO roles (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`, role,
		).Scan(&roleID)
		if err != nil {
			return 0, &shared.PersistenceError{Op: fmt.Sprintf("auth: upsert role %s", role), Err: err}
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO identity_roles (identity_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			id, roleID,
		); err != nil {
			return 0, &shared.PersistenceError{Op: "auth: link role", Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, &shared.PersistenceError{Op: "auth: commit", Err: err}
	}
	return id, nil
}

var _ Repository = (*PGRepository)(nil)
