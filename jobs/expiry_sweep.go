package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/campusdesk/campusdesk/internal/registry/memberships"
)

// ExpirySweepJob lists memberships past their expiry date and reports them.
// The sweep is read-only; membership records are never mutated after
// creation, expiry is a property of the stored dates.
type ExpirySweepJob struct {
	Repo   memberships.Repository
	Logger *slog.Logger
	clock  func() time.Time
}

// NewExpirySweepJob initialises the sweep handler.
func NewExpirySweepJob(repo memberships.Repository, logger *slog.Logger) *ExpirySweepJob {
	return &ExpirySweepJob{
		Repo:   repo,
		Logger: logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle executes the sweep.
func (j *ExpirySweepJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Repo == nil {
		return errors.New("expiry sweep: handler not configured")
	}
	var payload ExpirySweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	asOf := payload.AsOf
	if asOf == "" {
		asOf = j.clock().Format(time.DateOnly)
	}

	logger := j.logger().With(slog.String("as_of", asOf))
	logger.Info("starting membership expiry sweep")

	expired, err := j.Repo.ListExpiredAsOf(ctx, asOf)
	if err != nil {
		logger.Error("sweep failed", slog.Any("error", err))
		return err
	}
	for _, m := range expired {
		logger.Warn("membership expired",
			slog.Int64("membership_id", m.ID),
			slog.String("type", m.Type),
			slog.String("expiry_date", m.ExpiryDate.Format(time.DateOnly)),
		)
	}
	logger.Info("membership expiry sweep complete", slog.Int("expired", len(expired)))
	return nil
}

func (j *ExpirySweepJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
