package memberships

import (
	"context"
	"time"
)

// Service applies the membership lifecycle rules on top of the repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceWithClock constructs a Service with an injected clock.
func NewServiceWithClock(repo Repository, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

// Create derives start/expiry dates from the requested type and persists
// the membership.
func (s *Service) Create(ctx context.Context, req CreateMembershipRequest) (*Membership, error) {
	canonical, start, expiry, err := Schedule(req.Type, s.now())
	if err != nil {
		return nil, err
	}
	m := Membership{Type: canonical, StartDate: start, ExpiryDate: expiry}
	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return &m, nil
}

// Update changes the type label going forward. The originally computed
// start/expiry dates are never recomputed.
func (s *Service) Update(ctx context.Context, id int64, req UpdateMembershipRequest) (*Membership, error) {
	canonical, err := CanonicalType(req.Type)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateType(ctx, id, canonical); err != nil {
		return nil, err
	}
	existing.Type = canonical
	return existing, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Membership, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Membership, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
