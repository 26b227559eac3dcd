package activities

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// pgUniqueViolation is the PostgreSQL error code raised when the
// normalized-name unique index rejects a concurrent insert.
const pgUniqueViolation = "23505"

// Repository defines persistence operations for activities.
type Repository interface {
	Get(ctx context.Context, id int64) (*Activity, error)
	List(ctx context.Context) ([]Activity, error)
	Create(ctx context.Context, activity Activity) (int64, error)
	Update(ctx context.Context, activity Activity) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Get(ctx context.Context, id int64) (*Activity, error) {
	var a Activity
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, type FROM activities WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &shared.NotFoundError{Kind: shared.KindActivity, ID: id}
		}
		return nil, &shared.PersistenceError{Op: "activities: get", Err: err}
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context) ([]Activity, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, type FROM activities ORDER BY id`)
	if err != nil {
		return nil, &shared.PersistenceError{Op: "activities: list", Err: err}
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Type); err != nil {
			return nil, &shared.PersistenceError{Op: "activities: scan", Err: err}
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &shared.PersistenceError{Op: "activities: iterate", Err: err}
	}
	return activities, nil
}

func (r *repository) Create(ctx context.Context, activity Activity) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO activities (name, type) VALUES ($1, $2) RETURNING id`,
		activity.Name, activity.Type,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError("activities: create", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, activity Activity) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE activities SET name = $1, type = $2 WHERE id = $3`,
		activity.Name, activity.Type, activity.ID,
	)
	if err != nil {
		return mapWriteError("activities: update", err)
	}
	if tag.RowsAffected() == 0 {
		return &shared.NotFoundError{Kind: shared.KindActivity, ID: activity.ID}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return &shared.PersistenceError{Op: "activities: delete", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &shared.NotFoundError{Kind: shared.KindActivity, ID: id}
	}
	return nil
}

// mapWriteError translates a unique-index violation on the normalized name
// into the duplicate sentinel so concurrent writers racing past the
// service-level scan still surface a conflict, not a server error.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return shared.ErrDuplicateActivity
	}
	return &shared.PersistenceError{Op: op, Err: err}
}
