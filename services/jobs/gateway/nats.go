package gateway

import (
	"context"
	"encoding/json"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	natspkg "github.com/dealerdrive/dealerdrive/internal/pkg/nats"
	"github.com/dealerdrive/dealerdrive/internal/pkg/retry"
	"github.com/dealerdrive/dealerdrive/services/jobs"
)

// JobGW handles NATS publishing for job lifecycle events
type JobGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewJobGW creates a new job gateway. The retrier is optional; when nil each
// publish is attempted once.
func NewJobGW(client *natspkg.Client, retrier *retry.Retrier) jobs.JobGW {
	return &JobGW{
		natsClient: client,
		retrier:    retrier,
	}
}

// PublishJobCreated publishes a job created event to NATS
func (g *JobGW) PublishJobCreated(ctx context.Context, event models.JobEvent) error {
	return g.publish(ctx, constants.SubjectJobCreated, event)
}

// PublishJobAccepted publishes a job accepted event to NATS
func (g *JobGW) PublishJobAccepted(ctx context.Context, event models.JobEvent) error {
	return g.publish(ctx, constants.SubjectJobAccepted, event)
}

// PublishJobStarted publishes a job started event to NATS
func (g *JobGW) PublishJobStarted(ctx context.Context, event models.JobEvent) error {
	return g.publish(ctx, constants.SubjectJobStarted, event)
}

// PublishJobCompleted publishes a job completed event to NATS
func (g *JobGW) PublishJobCompleted(ctx context.Context, event models.JobEvent) error {
	return g.publish(ctx, constants.SubjectJobCompleted, event)
}

// PublishJobCancelled publishes a job cancelled event to NATS
func (g *JobGW) PublishJobCancelled(ctx context.Context, event models.JobEvent) error {
	return g.publish(ctx, constants.SubjectJobCancelled, event)
}

func (g *JobGW) publish(ctx context.Context, subject string, event models.JobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if g.retrier == nil {
		return g.natsClient.Publish(subject, data)
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(subject, data)
	})
}
