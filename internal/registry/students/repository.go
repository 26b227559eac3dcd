package students

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/campusdesk/internal/platform/db"
	"github.com/campusdesk/campusdesk/internal/registry/activities"
	"github.com/campusdesk/campusdesk/internal/shared"
)

// Repository defines persistence operations for the student aggregate.
// Writes that touch the join table run inside a single transaction so a
// student row never becomes visible with a partial activity set.
type Repository interface {
	Get(ctx context.Context, id int64) (*Student, error)
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, s Student) (int64, error)
	Update(ctx context.Context, s Student) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const studentSelect = `
	SELECT s.id, s.first_name, s.last_name, s.phone, s.email, s.address, s.date_of_birth,
	       g.id, g.letter, g.standard,
	       m.id, m.membership_type, m.start_date, m.expiry_date
	FROM students s
	JOIN grades g ON g.id = s.grade_id
	JOIN memberships m ON m.id = s.membership_id`

func (r *repository) Get(ctx context.Context, id int64) (*Student, error) {
	var s Student
	err := r.pool.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Phone, &s.Email, &s.Address, &s.DateOfBirth,
		&s.Grade.ID, &s.Grade.Letter, &s.Grade.Standard,
		&s.Membership.ID, &s.Membership.Type, &s.Membership.StartDate, &s.Membership.ExpiryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &shared.NotFoundError{Kind: shared.KindStudent, ID: id}
		}
		return nil, &shared.PersistenceError{Op: "students: get", Err: err}
	}
	acts, err := r.activitiesFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	s.Activities = acts[id]
	return &s, nil
}

func (r *repository) List(ctx context.Context) ([]Student, error) {
	rows, err := r.pool.Query(ctx, studentSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, &shared.PersistenceError{Op: "students: list", Err: err}
	}
	defer rows.Close()

	var list []Student
	var ids []int64
	for rows.Next() {
		var s Student
		err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Phone, &s.Email, &s.Address, &s.DateOfBirth,
			&s.Grade.ID, &s.Grade.Letter, &s.Grade.Standard,
			&s.Membership.ID, &s.Membership.Type, &s.Membership.StartDate, &s.Membership.ExpiryDate,
		)
		if err != nil {
			return nil, &shared.PersistenceError{Op: "students: scan", Err: err}
		}
		list = append(list, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, &shared.PersistenceError{Op: "students: iterate", Err: err}
	}
	if len(ids) == 0 {
		return list, nil
	}

	acts, err := r.activitiesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Activities = acts[list[i].ID]
	}
	return list, nil
}

func (r *repository) Create(ctx context.Context, s Student) (int64, error) {
	var id int64
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO students (first_name, last_name, phone, email, address, date_of_birth, grade_id, membership_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			s.FirstName, s.LastName, s.Phone, s.Email, s.Address, s.DateOfBirth,
			s.Grade.ID, s.Membership.ID,
		).Scan(&id)
		if err != nil {
			return err
		}
		return insertActivityLinks(ctx, tx, id, s.Activities)
	})
	if err != nil {
		return 0, &shared.PersistenceError{Op: "students: create", Err: err}
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, s Student) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE students
			SET first_name = $1, last_name = $2, phone = $3, email = $4, address = $5,
			    date_of_birth = $6, grade_id = $7, membership_id = $8
			WHERE id = $9`,
			s.FirstName, s.LastName, s.Phone, s.Email, s.Address, s.DateOfBirth,
			s.Grade.ID, s.Membership.ID, s.ID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return &shared.NotFoundError{Kind: shared.KindStudent, ID: s.ID}
		}
		if _, err := tx.Exec(ctx, `DELETE FROM student_activities WHERE student_id = $1`, s.ID); err != nil {
			return err
		}
		return insertActivityLinks(ctx, tx, s.ID, s.Activities)
	})
	var notFound *shared.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	if err != nil {
		return &shared.PersistenceError{Op: "students: update", Err: err}
	}
	return nil
}

// Delete removes the student, its activity links, and the owned membership.
// Grade and activity records are shared and survive.
func (r *repository) Delete(ctx context.Context, id int64) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var membershipID int64
		err := tx.QueryRow(ctx, `SELECT membership_id FROM students WHERE id = $1`, id).Scan(&membershipID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &shared.NotFoundError{Kind: shared.KindStudent, ID: id}
			}
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM student_activities WHERE student_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, membershipID)
		return err
	})
	var notFound *shared.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	if err != nil {
		return &shared.PersistenceError{Op: "students: delete", Err: err}
	}
	return nil
}

func insertActivityLinks(ctx context.Context, tx pgx.Tx, studentID int64, acts []activities.Activity) error {
	for _, a := range acts {
		_, err := tx.Exec(ctx,
			`INSERT INTO student_activities (student_id, activity_id) VALUES ($1, $2)`,
			studentID, a.ID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// activitiesFor loads the activity sets for the given students in one query.
func (r *repository) activitiesFor(ctx context.Context, studentIDs []int64) (map[int64][]activities.Activity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sa.student_id, a.id, a.name, a.type
		FROM student_activities sa
		JOIN activities a ON a.id = sa.activity_id
		WHERE sa.student_id = ANY($1)
		ORDER BY a.id`, studentIDs)
	if err != nil {
		return nil, &shared.PersistenceError{Op: "students: activities", Err: err}
	}
	defer rows.Close()

	out := make(map[int64][]activities.Activity)
	for rows.Next() {
		var studentID int64
		var a activities.Activity
		if err := rows.Scan(&studentID, &a.ID, &a.Name, &a.Type); err != nil {
			return nil, &shared.PersistenceError{Op: "students: activities scan", Err: err}
		}
		out[studentID] = append(out[studentID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, &shared.PersistenceError{Op: "students: activities iterate", Err: err}
	}
	return out, nil
}
