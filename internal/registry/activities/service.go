package activities

import (
	"context"
	"strings"
)

// Service enforces the duplicate rules on top of the repository and keeps
// the cached catalog coherent after writes.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService wires a Repository with an optional Cache.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Get(ctx context.Context, id int64) (*Activity, error) {
	return s.repo.Get(ctx, id)
}

// List serves the catalog through the cache. Read failures against the
// cache backend fall through to the repository so the catalog stays
// available when Redis is down.
func (s *Service) List(ctx context.Context) ([]Activity, error) {
	key, err := s.cache.ListKey(ctx)
	if err != nil {
		return s.repo.List(ctx)
	}
	var activities []Activity
	err = s.cache.FetchJSON(ctx, key, &activities, func(ctx context.Context) (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return s.repo.List(ctx)
	}
	return activities, nil
}

func (s *Service) Create(ctx context.Context, req UpsertActivityRequest) (*Activity, error) {
	candidate := Activity{
		Name: strings.TrimSpace(req.Name),
		Type: strings.TrimSpace(req.Type),
	}
	if err := s.guardDuplicate(ctx, candidate, 0); err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}
	candidate.ID = id
	_ = s.cache.Bump(ctx)
	return &candidate, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertActivityRequest) (*Activity, error) {
	candidate := Activity{
		ID:   id,
		Name: strings.TrimSpace(req.Name),
		Type: strings.TrimSpace(req.Type),
	}
	if err := s.guardDuplicate(ctx, candidate, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	_ = s.cache.Bump(ctx)
	return &candidate, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Bump(ctx)
	return nil
}

func (s *Service) guardDuplicate(ctx context.Context, candidate Activity, excludeID int64) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	return checkDuplicate(existing, candidate, excludeID)
}
