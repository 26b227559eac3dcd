package memberships

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// Repository defines persistence operations for memberships.
type Repository interface {
	Get(ctx context.Context, id int64) (*Membership, error)
	List(ctx context.Context) ([]Membership, error)
	Create(ctx context.Context, m Membership) (int64, error)
	UpdateType(ctx context.Context, id int64, membershipType string) error
	Delete(ctx context.Context, id int64) error
	ListExpiredAsOf(ctx context.Context, day string) ([]Membership, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Get(ctx context.Context, id int64) (*Membership, error) {
	var m Membership
	err := r.pool.QueryRow(ctx,
		`SELECT id, membership_type, start_date, expiry_date FROM memberships WHERE id = $1`, id,
	).Scan(&m.ID, &m.Type, &m.StartDate, &m.ExpiryDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &shared.NotFoundError{Kind: shared.KindMembership, ID: id}
		}
		return nil, &shared.PersistenceError{Op: "memberships: get", Err: err}
	}
	return &m, nil
}

func (r *repository) List(ctx context.Context) ([]Membership, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, membership_type, start_date, expiry_date FROM memberships ORDER BY id`)
	if err != nil {
		return nil, &shared.PersistenceError{Op: "memberships: list", Err: err}
	}
	defer rows.Close()
	return scanMemberships(rows)
}

func (r *repository) Create(ctx context.Context, m Membership) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO memberships (membership_type, start_date, expiry_date)
		VALUES ($1, $2, $3)
		RETURNING id`,
		m.Type, m.StartDate, m.ExpiryDate,
	).Scan(&id)
	if err != nil {
		return 0, &shared.PersistenceError{Op: "memberships: create", Err: err}
	}
	return id, nil
}

// UpdateType replaces the type label only. Start and expiry columns are
// deliberately absent from the statement; they never change after creation.
func (r *repository) UpdateType(ctx context.Context, id int64, membershipType string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE memberships SET membership_type = $1 WHERE id = $2`,
		membershipType, id,
	)
	if err != nil {
		return &shared.PersistenceError{Op: "memberships: update type", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &shared.NotFoundError{Kind: shared.KindMembership, ID: id}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return &shared.PersistenceError{Op: "memberships: delete", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &shared.NotFoundError{Kind: shared.KindMembership, ID: id}
	}
	return nil
}

func (r *repository) ListExpiredAsOf(ctx context.Context, day string) ([]Membership, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, membership_type, start_date, expiry_date
		FROM memberships
		WHERE expiry_date < $1::date
		ORDER BY expiry_date`, day)
	if err != nil {
		return nil, &shared.PersistenceError{Op: "memberships: list expired", Err: err}
	}
	defer rows.Close()
	return scanMemberships(rows)
}

func scanMemberships(rows pgx.Rows) ([]Membership, error) {
	var list []Membership
	for rows.Next() {
		var m Membership
		if err := rows.Scan(&m.ID, &m.Type, &m.StartDate, &m.ExpiryDate); err != nil {
			return nil, &shared.PersistenceError{Op: "memberships: scan", Err: err}
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &shared.PersistenceError{Op: "memberships: iterate", Err: err}
	}
	return list, nil
}
