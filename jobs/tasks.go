package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskMembershipExpirySweep reports memberships past their expiry date.
	TaskMembershipExpirySweep = "membership:expiry-sweep"
)

// ExpirySweepPayload scopes a sweep to a reference day. An empty AsOf means
// the day the sweep runs.
type ExpirySweepPayload struct {
	AsOf string `json:"as_of,omitempty"`
}

// NewExpirySweepTask constructs the sweep task.
func NewExpirySweepTask(asOf time.Time) (*asynq.Task, error) {
	payload := ExpirySweepPayload{}
	if !asOf.IsZero() {
		payload.AsOf = asOf.Format(time.DateOnly)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMembershipExpirySweep, data), nil
}
