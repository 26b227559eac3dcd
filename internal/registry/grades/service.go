package grades

import "context"

// Service exposes grade operations to handlers and to the student
// relationship resolver.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (*Grade, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Grade, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req UpsertGradeRequest) (*Grade, error) {
	grade := Grade{Letter: req.Letter, Standard: req.Standard}
	id, err := s.repo.Create(ctx, grade)
	if err != nil {
		return nil, err
	}
	grade.ID = id
	return &grade, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertGradeRequest) (*Grade, error) {
	grade := Grade{ID: id, Letter: req.Letter, Standard: req.Standard}
	if err := s.repo.Update(ctx, grade); err != nil {
		return nil, err
	}
	return &grade, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
