package grades

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// Repository defines persistence operations for grades.
type Repository interface {
	Get(ctx context.Context, id int64) (*Grade, error)
	List(ctx context.Context) ([]Grade, error)
	Create(ctx context.Context, grade Grade) (int64, error)
	Update(ctx context.Context, grade Grade) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Get(ctx context.Context, id int64) (*Grade, error) {
	var g Grade
	err := r.pool.QueryRow(ctx,
		`SELECT id, letter, standard FROM grades WHERE id = $1`, id,
	).Scan(&g.ID, &g.Letter, &g.Standard)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &shared.NotFoundError{Kind: shared.KindGrade, ID: id}
		}
		return nil, &shared.PersistenceError{Op: "grades: get", Err: err}
	}
	return &g, nil
}

func (r *repository) List(ctx context.Context) ([]Grade, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, letter, standard FROM grades ORDER BY standard, letter`)
	if err != nil {
		return nil, &shared.PersistenceError{Op: "grades: list", Err: err}
	}
	defer rows.Close()

	var grades []Grade
	for rows.Next() {
		var g Grade
		if err := rows.Scan(&g.ID, &g.Letter, &g.Standard); err != nil {
			return nil, &shared.PersistenceError{Op: "grades: scan", Err: err}
		}
		grades = append(grades, g)
	}
	if err := rows.Err(); err != nil {
		return nil, &shared.PersistenceError{Op: "grades: iterate", Err: err}
	}
	return grades, nil
}

func (r *repository) Create(ctx context.Context, grade Grade) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO grades (letter, standard) VALUES ($1, $2) RETURNING id`,
		grade.Letter, grade.Standard,
	).Scan(&id)
	if err != nil {
		return 0, &shared.PersistenceError{Op: "grades: create", Err: err}
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, grade Grade) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE grades SET letter = $1, standard = $2 WHERE id = $3`,
		grade.Letter, grade.Standard, grade.ID,
	)
	if err != nil {
		return &shared.PersistenceError{Op: "grades: update", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &shared.NotFoundError{Kind: shared.KindGrade, ID: grade.ID}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return &shared.PersistenceError{Op: "grades: delete", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &shared.NotFoundError{Kind: shared.KindGrade, ID: id}
	}
	return nil
}
