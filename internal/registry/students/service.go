package students

import (
	"context"
	"time"

	"github.com/campusdesk/campusdesk/internal/registry/activities"
	"github.com/campusdesk/campusdesk/internal/registry/grades"
	"github.com/campusdesk/campusdesk/internal/registry/memberships"
	"github.com/campusdesk/campusdesk/internal/shared"
)

// GradeStore resolves grade identifiers to records.
type GradeStore interface {
	Get(ctx context.Context, id int64) (*grades.Grade, error)
}

// MembershipStore resolves membership identifiers to records.
type MembershipStore interface {
	Get(ctx context.Context, id int64) (*memberships.Membership, error)
}

// ActivityStore resolves activity identifiers to records.
type ActivityStore interface {
	Get(ctx context.Context, id int64) (*activities.Activity, error)
}

// Service resolves the identifier references in a student input against the
// collaborator collections and persists the aggregate. Resolution runs
// before any write; the first unresolvable identifier aborts the request
// with a typed not-found error naming the collection and the offending id.
type Service struct {
	repo        Repository
	grades      GradeStore
	memberships MembershipStore
	activities  ActivityStore
}

// NewService wires the resolver with its collaborator stores.
func NewService(repo Repository, grades GradeStore, memberships MembershipStore, activities ActivityStore) *Service {
	return &Service{repo: repo, grades: grades, memberships: memberships, activities: activities}
}

func (s *Service) Get(ctx context.Context, id int64) (*Student, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Student, error) {
	return s.repo.List(ctx)
}

// Register resolves the input and creates the student.
func (s *Service) Register(ctx context.Context, input StudentInput) (*Student, error) {
	student, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, *student)
	if err != nil {
		return nil, err
	}
	student.ID = id
	return student, nil
}

// Update resolves the input and replaces the stored record wholesale,
// including the full activity set.
func (s *Service) Update(ctx context.Context, id int64, input StudentInput) (*Student, error) {
	student, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	student.ID = id
	if err := s.repo.Update(ctx, *student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// resolve checks every referenced identifier in a fixed order: grade, then
// membership, then activities in input order. Duplicate activity ids
// collapse to a single link.
func (s *Service) resolve(ctx context.Context, input StudentInput) (*Student, error) {
	dob, err := time.Parse(time.DateOnly, input.DateOfBirth)
	if err != nil {
		return nil, &shared.ValidationError{Field: "date_of_birth", Reason: "must be a valid YYYY-MM-DD date"}
	}

	grade, err := s.grades.Get(ctx, input.GradeID)
	if err != nil {
		return nil, err
	}
	membership, err := s.memberships.Get(ctx, input.MembershipID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(input.ActivityIDs))
	resolved := make([]activities.Activity, 0, len(input.ActivityIDs))
	for _, activityID := range input.ActivityIDs {
		if seen[activityID] {
			continue
		}
		seen[activityID] = true
		activity, err := s.activities.Get(ctx, activityID)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *activity)
	}

	return &Student{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		DateOfBirth: dob,
		Grade:       *grade,
		Membership:  *membership,
		Activities:  resolved,
	}, nil
}
