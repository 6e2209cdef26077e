package gateway

import (
	"context"
	"encoding/json"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	natspkg "github.com/dealerdrive/dealerdrive/internal/pkg/nats"
	"github.com/dealerdrive/dealerdrive/internal/pkg/retry"
	"github.com/dealerdrive/dealerdrive/services/tracking"
)

// TrackingGW handles NATS publishing for tracking events
type TrackingGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewTrackingGW creates a new tracking gateway. The retrier is optional; when
// nil each publish is attempted once.
func NewTrackingGW(client *natspkg.Client, retrier *retry.Retrier) tracking.TrackingGW {
	return &TrackingGW{
		natsClient: client,
		retrier:    retrier,
	}
}

// PublishLocationAggregate publishes the running distance aggregate to NATS.
// Aggregates are fire-and-forget; a lost sample is superseded by the next fix.
func (g *TrackingGW) PublishLocationAggregate(ctx context.Context, agg models.LocationAggregate) error {
	data, err := json.Marshal(agg)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(constants.SubjectLocationAggregate, data)
}

// PublishDriveCompleted publishes the final drive distance to NATS. This one
// is retried: the jobs service records the figure on the assignment.
func (g *TrackingGW) PublishDriveCompleted(ctx context.Context, event models.DriveCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if g.retrier == nil {
		return g.natsClient.Publish(constants.SubjectDriveCompleted, data)
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(constants.SubjectDriveCompleted, data)
	})
}
