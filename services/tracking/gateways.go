package tracking

import (
	"context"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// TrackingGW defines the interface for tracking event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/dealerdrive/dealerdrive/services/tracking TrackingGW
type TrackingGW interface {
	PublishLocationAggregate(ctx context.Context, agg models.LocationAggregate) error
	PublishDriveCompleted(ctx context.Context, event models.DriveCompletedEvent) error
}
