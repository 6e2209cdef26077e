package tracking

import (
	"context"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// TrackingUC defines the interface for drive tracking business logic.
// One drive may be active per driver at a time.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/dealerdrive/dealerdrive/services/tracking TrackingUC
type TrackingUC interface {
	StartDrive(ctx context.Context, req models.DriveStartRequest) (*models.ActiveDrive, error)
	OnPositionUpdate(ctx context.Context, driverID string, loc models.Location) (*models.DriveStats, error)
	GetActiveDrive(driverID string) (*models.ActiveDrive, error)
	GetCurrentDriveStats(driverID string) (*models.DriveStats, error)
	CompleteDrive(ctx context.Context, driverID string) (*models.DriveCompletedEvent, error)

	// Subscribe registers a callback invoked with a stats snapshot on every
	// accepted fix for the driver. The returned id cancels the subscription
	// via Unsubscribe.
	Subscribe(driverID string, fn func(models.DriveStats)) string
	Unsubscribe(driverID, subscriptionID string)
}
