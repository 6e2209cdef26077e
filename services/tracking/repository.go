package tracking

import (
	"context"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// TrackingRepo defines the interface for drive tracking persistence in Redis
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/dealerdrive/dealerdrive/services/tracking TrackingRepo
type TrackingRepo interface {
	AddActiveDriver(ctx context.Context, driverID string) error
	RemoveActiveDriver(ctx context.Context, driverID string) error

	// StoreLastPosition writes the last-known position hash and refreshes the
	// driver geo index.
	StoreLastPosition(ctx context.Context, drive *models.ActiveDrive, loc models.Location) error
	GetLastPosition(ctx context.Context, driverID string) (*models.Location, error)

	AppendHistory(ctx context.Context, assignmentID string, loc models.Location) error
	GetHistory(ctx context.Context, assignmentID string) ([]models.Location, error)

	// ClearDriveData removes the per-driver tracking keys once a drive ends.
	// History is kept until its TTL expires.
	ClearDriveData(ctx context.Context, driverID string) error
}
