package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/campusdesk/internal/registry/memberships"
	"github.com/campusdesk/campusdesk/internal/shared"
)

type sweepRepo struct {
	expired  []memberships.Membership
	lastAsOf string
}

func (r *sweepRepo) Get(ctx context.Context, id int64) (*memberships.Membership, error) {
	return nil, &shared.NotFoundError{Kind: shared.KindMembership, ID: id}
}

func (r *sweepRepo) List(ctx context.Context) ([]memberships.Membership, error) { return nil, nil }

func (r *sweepRepo) Create(ctx context.Context, m memberships.Membership) (int64, error) {
	return 0, nil
}

func (r *sweepRepo) UpdateType(ctx context.Context, id int64, membershipType string) error {
	return nil
}

func (r *sweepRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *sweepRepo) ListExpiredAsOf(ctx context.Context, day string) ([]memberships.Membership, error) {
	r.lastAsOf = day
	return r.expired, nil
}

func TestExpirySweepUsesPayloadDay(t *testing.T) {
	repo := &sweepRepo{expired: []memberships.Membership{
		{ID: 7, Type: memberships.TypeStandard, ExpiryDate: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)},
	}}
	job := NewExpirySweepJob(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	task, err := NewExpirySweepTask(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	assert.Equal(t, "2024-06-01", repo.lastAsOf)
}

func TestExpirySweepDefaultsToToday(t *testing.T) {
	repo := &sweepRepo{}
	job := NewExpirySweepJob(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	job.clock = func() time.Time { return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC) }

	task, err := NewExpirySweepTask(time.Time{})
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))
	assert.Equal(t, "2024-03-15", repo.lastAsOf)
}

func TestExpirySweepRejectsGarbagePayload(t *testing.T) {
	job := NewExpirySweepJob(&sweepRepo{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := job.Handle(context.Background(), asynq.NewTask(TaskMembershipExpirySweep, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
