package jobs

import (
	"context"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// JobGW defines the interface for job event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dealerdrive/dealerdrive/services/jobs JobGW
type JobGW interface {
	PublishJobCreated(ctx context.Context, event models.JobEvent) error
	PublishJobAccepted(ctx context.Context, event models.JobEvent) error
	PublishJobStarted(ctx context.Context, event models.JobEvent) error
	PublishJobCompleted(ctx context.Context, event models.JobEvent) error
	PublishJobCancelled(ctx context.Context, event models.JobEvent) error
}
