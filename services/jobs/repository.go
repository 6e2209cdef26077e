package jobs

import (
	"context"
	"time"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// JobRepo defines the interface for job data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/dealerdrive/dealerdrive/services/jobs JobRepo
type JobRepo interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	ListJobsByStatus(ctx context.Context, status models.JobStatus) ([]*models.Job, error)
	ListJobsByDealer(ctx context.Context, dealerID string) ([]*models.Job, error)
	ListJobsByDriver(ctx context.Context, driverID string) ([]*models.Job, error)

	// UpdateJobStatus performs a compare-and-swap on the status column; it
	// returns ErrConflictingUpdate when the job is not in the expected prior
	// status at write time.
	UpdateJobStatus(ctx context.Context, jobID string, from, to models.JobStatus) error

	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	GetAssignment(ctx context.Context, assignmentID string) (*models.Assignment, error)
	MarkAssignmentStarted(ctx context.Context, assignmentID string, startedAt time.Time, odometerStart float64) error
	MarkAssignmentEnded(ctx context.Context, assignmentID string, endedAt time.Time, odometerEnd float64, dealerPlate string, distanceKm float64) error
	// UpdateAssignmentDistance stores the tracked drive distance on an
	// assignment that has not yet ended.
	UpdateAssignmentDistance(ctx context.Context, assignmentID string, distanceKm float64) error
	// CloseAssignmentForJob soft-closes any open assignment for the job,
	// keeping the record for audit.
	CloseAssignmentForJob(ctx context.Context, jobID string, endedAt time.Time) error

	CreateInspection(ctx context.Context, inspection *models.VehicleInspection) error
	ListInspectionsByAssignment(ctx context.Context, assignmentID string) ([]*models.VehicleInspection, error)
}
