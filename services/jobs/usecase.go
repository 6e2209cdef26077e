package jobs

import (
	"context"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// JobUC defines the interface for job lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/dealerdrive/dealerdrive/services/jobs JobUC
type JobUC interface {
	CreateJob(ctx context.Context, req models.JobCreateRequest) (*models.Job, error)
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	ListOpenJobs(ctx context.Context) ([]*models.Job, error)
	ListDealerJobs(ctx context.Context, dealerID string) ([]*models.Job, error)
	ListDriverJobs(ctx context.Context, driverID string) ([]*models.Job, error)
	AcceptJob(ctx context.Context, jobID, driverID string) (*models.Assignment, error)
	StartJob(ctx context.Context, req models.JobStartRequest) (*models.Assignment, error)
	CompleteJob(ctx context.Context, req models.JobCompleteRequest) (*models.Assignment, error)
	CancelJob(ctx context.Context, jobID, dealerID, reason string) error
	RecordDriveDistance(ctx context.Context, assignmentID string, distanceKm float64) error
	GetAssignment(ctx context.Context, assignmentID string) (*models.Assignment, error)
	ListInspections(ctx context.Context, assignmentID string) ([]*models.VehicleInspection, error)
}
