package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/internal/utils"
	"github.com/dealerdrive/dealerdrive/services/jobs"
)

// jobUC implements the jobs.JobUC interface
type jobUC struct {
	cfg     *models.Config
	jobRepo jobs.JobRepo
	jobGW   jobs.JobGW
}

// NewJobUC creates a new job use case
func NewJobUC(
	cfg *models.Config,
	jobRepo jobs.JobRepo,
	jobGW jobs.JobGW,
) (jobs.JobUC, error) {
	return &jobUC{
		cfg:     cfg,
		jobRepo: jobRepo,
		jobGW:   jobGW,
	}, nil
}

// CreateJob validates a dealer submission and persists a new open job
func (uc *jobUC) CreateJob(ctx context.Context, req models.JobCreateRequest) (*models.Job, error) {
	switch req.JobType {
	case models.JobTypeDelivery, models.JobTypeSwap, models.JobTypeParts, models.JobTypeService:
	default:
		return nil, jobs.ErrInvalidJobType
	}

	if req.Vehicle.VIN != "" && !utils.ValidateVIN(req.Vehicle.VIN) {
		return nil, jobs.ErrInvalidVIN
	}

	dealerID, err := uuid.Parse(req.DealerID)
	if err != nil {
		return nil, fmt.Errorf("invalid dealer id: %w", err)
	}
	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("invalid creating user id: %w", err)
	}

	now := time.Now()
	job := &models.Job{
		ID:                 uuid.New(),
		DealerID:           dealerID,
		CreatedBy:          createdBy,
		JobType:            req.JobType,
		Status:             models.JobStatusOpen,
		PickupAddress:      req.PickupAddress,
		DeliveryAddress:    req.DeliveryAddress,
		Vehicle:            req.Vehicle,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		DistanceEstimateKm: req.DistanceEstimateKm,
		Notes:              req.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.jobRepo.CreateJob(ctx, job); err != nil {
		logger.Error("Failed to create job",
			logger.String("dealer_id", req.DealerID),
			logger.Err(err))
		return nil, err
	}

	uc.publishEvent(ctx, uc.jobGW.PublishJobCreated, job, nil)

	logger.Info("Job created",
		logger.String("job_id", job.ID.String()),
		logger.String("dealer_id", job.DealerID.String()),
		logger.String("job_type", string(job.JobType)))

	return job, nil
}

// GetJob retrieves a job by id
func (uc *jobUC) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	return uc.jobRepo.GetJob(ctx, jobID)
}

// ListOpenJobs returns the driver-facing job board
func (uc *jobUC) ListOpenJobs(ctx context.Context) ([]*models.Job, error) {
	return uc.jobRepo.ListJobsByStatus(ctx, models.JobStatusOpen)
}

// ListDealerJobs returns all jobs owned by a dealer
func (uc *jobUC) ListDealerJobs(ctx context.Context, dealerID string) ([]*models.Job, error) {
	return uc.jobRepo.ListJobsByDealer(ctx, dealerID)
}

// ListDriverJobs returns all jobs a driver has been assigned to
func (uc *jobUC) ListDriverJobs(ctx context.Context, driverID string) ([]*models.Job, error) {
	return uc.jobRepo.ListJobsByDriver(ctx, driverID)
}

// AcceptJob binds a driver to an open job. The open->assigned compare-and-swap
// is the arbitration point: of two drivers racing for the same job, exactly one
// write flips the status and only that caller creates an assignment.
func (uc *jobUC) AcceptJob(ctx context.Context, jobID, driverID string) (*models.Assignment, error) {
	driver, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("invalid driver id: %w", err)
	}

	job, err := uc.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != models.JobStatusOpen {
		return nil, jobs.ErrAlreadyAssigned
	}

	if err := uc.jobRepo.UpdateJobStatus(ctx, jobID, models.JobStatusOpen, models.JobStatusAssigned); err != nil {
		if errors.Is(err, jobs.ErrConflictingUpdate) {
			return nil, jobs.ErrAlreadyAssigned
		}
		return nil, err
	}

	now := time.Now()
	assignment := &models.Assignment{
		ID:         uuid.New(),
		JobID:      job.ID,
		DriverID:   driver,
		AcceptedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.jobRepo.CreateAssignment(ctx, assignment); err != nil {
		logger.Error("Failed to create assignment after status flip",
			logger.String("job_id", jobID),
			logger.String("driver_id", driverID),
			logger.Err(err))
		return nil, err
	}

	job.Status = models.JobStatusAssigned
	uc.publishEvent(ctx, uc.jobGW.PublishJobAccepted, job, assignment)

	logger.Info("Job accepted",
		logger.String("job_id", jobID),
		logger.String("assignment_id", assignment.ID.String()),
		logger.String("driver_id", driverID))

	return assignment, nil
}

// StartJob begins the drive: pre-drive inspection photos and a starting
// odometer reading are required before any state is written.
func (uc *jobUC) StartJob(ctx context.Context, req models.JobStartRequest) (*models.Assignment, error) {
	if len(req.PhotoURLs) == 0 {
		return nil, jobs.ErrMissingPrerequisite
	}
	if req.OdometerStart <= 0 {
		return nil, jobs.ErrInvalidOdometer
	}

	assignment, err := uc.jobRepo.GetAssignment(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.DriverID.String() != req.DriverID {
		return nil, jobs.ErrNotOwner
	}
	if assignment.StartedAt != nil {
		return nil, jobs.ErrInvalidTransition
	}

	job, err := uc.jobRepo.GetJob(ctx, assignment.JobID.String())
	if err != nil {
		return nil, err
	}
	if !job.Status.CanTransitionTo(models.JobStatusInProgress) {
		return nil, jobs.ErrInvalidTransition
	}

	now := time.Now()

	// Evidence first: the inspection row must exist before the status flips,
	// so a mid-sequence failure never yields an in-progress job without photos.
	inspection := &models.VehicleInspection{
		ID:             uuid.New(),
		JobID:          job.ID,
		AssignmentID:   assignment.ID,
		InspectionType: models.InspectionPreDrive,
		PhotoURLs:      req.PhotoURLs,
		Odometer:       req.OdometerStart,
		CreatedAt:      now,
	}
	if err := uc.jobRepo.CreateInspection(ctx, inspection); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.MarkAssignmentStarted(ctx, assignment.ID.String(), now, req.OdometerStart); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.UpdateJobStatus(ctx, job.ID.String(), models.JobStatusAssigned, models.JobStatusInProgress); err != nil {
		return nil, err
	}

	assignment.StartedAt = &now
	assignment.OdometerStart = &req.OdometerStart
	job.Status = models.JobStatusInProgress
	uc.publishEvent(ctx, uc.jobGW.PublishJobStarted, job, assignment)

	logger.Info("Job started",
		logger.String("job_id", job.ID.String()),
		logger.String("assignment_id", assignment.ID.String()),
		logger.Float64("odometer_start", req.OdometerStart),
		logger.Int("inspection_photos", len(req.PhotoURLs)))

	return assignment, nil
}

// CompleteJob ends the drive with proof of delivery
func (uc *jobUC) CompleteJob(ctx context.Context, req models.JobCompleteRequest) (*models.Assignment, error) {
	if req.ProofPhotoURL == "" || !models.IsValidDealerPlate(req.DealerPlate) {
		return nil, jobs.ErrMissingPrerequisite
	}

	assignment, err := uc.jobRepo.GetAssignment(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.DriverID.String() != req.DriverID {
		return nil, jobs.ErrNotOwner
	}
	if assignment.StartedAt == nil || assignment.EndedAt != nil {
		return nil, jobs.ErrInvalidTransition
	}
	if assignment.OdometerStart != nil && req.OdometerEnd < *assignment.OdometerStart {
		return nil, jobs.ErrInvalidOdometer
	}

	job, err := uc.jobRepo.GetJob(ctx, assignment.JobID.String())
	if err != nil {
		return nil, err
	}
	if !job.Status.CanTransitionTo(models.JobStatusCompleted) {
		return nil, jobs.ErrInvalidTransition
	}

	now := time.Now()

	inspection := &models.VehicleInspection{
		ID:             uuid.New(),
		JobID:          job.ID,
		AssignmentID:   assignment.ID,
		InspectionType: models.InspectionPostDrive,
		PhotoURLs:      []string{req.ProofPhotoURL},
		Odometer:       req.OdometerEnd,
		CreatedAt:      now,
	}
	if err := uc.jobRepo.CreateInspection(ctx, inspection); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.MarkAssignmentEnded(ctx, assignment.ID.String(), now, req.OdometerEnd, req.DealerPlate, req.DistanceKm); err != nil {
		return nil, err
	}

	if err := uc.jobRepo.UpdateJobStatus(ctx, job.ID.String(), models.JobStatusInProgress, models.JobStatusCompleted); err != nil {
		return nil, err
	}

	assignment.EndedAt = &now
	assignment.OdometerEnd = &req.OdometerEnd
	assignment.DealerPlate = req.DealerPlate
	assignment.DistanceKm = req.DistanceKm
	job.Status = models.JobStatusCompleted
	uc.publishEvent(ctx, uc.jobGW.PublishJobCompleted, job, assignment)

	logger.Info("Job completed",
		logger.String("job_id", job.ID.String()),
		logger.String("assignment_id", assignment.ID.String()),
		logger.Float64("odometer_end", req.OdometerEnd),
		logger.Float64("distance_km", req.DistanceKm))

	return assignment, nil
}

// CancelJob terminates a job before the drive starts. Only the owning dealer
// may cancel. The assignment, if one exists, is soft-closed and kept for audit.
func (uc *jobUC) CancelJob(ctx context.Context, jobID, dealerID, reason string) error {
	job, err := uc.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if job.DealerID.String() != dealerID {
		return jobs.ErrNotOwner
	}
	if !job.Status.CanTransitionTo(models.JobStatusCancelled) {
		return jobs.ErrInvalidTransition
	}

	if err := uc.jobRepo.UpdateJobStatus(ctx, jobID, job.Status, models.JobStatusCancelled); err != nil {
		return err
	}

	now := time.Now()
	if job.Status == models.JobStatusAssigned {
		if err := uc.jobRepo.CloseAssignmentForJob(ctx, jobID, now); err != nil {
			logger.Warn("Failed to close assignment on cancellation",
				logger.String("job_id", jobID),
				logger.Err(err))
		}
	}

	job.Status = models.JobStatusCancelled
	uc.publishEvent(ctx, uc.jobGW.PublishJobCancelled, job, nil)

	logger.Info("Job cancelled",
		logger.String("job_id", jobID),
		logger.String("reason", reason))

	return nil
}

// RecordDriveDistance stores the distance measured by the tracking service on
// the assignment, so completion does not have to trust the client-reported
// figure.
func (uc *jobUC) RecordDriveDistance(ctx context.Context, assignmentID string, distanceKm float64) error {
	if err := uc.jobRepo.UpdateAssignmentDistance(ctx, assignmentID, distanceKm); err != nil {
		logger.Warn("Failed to record drive distance",
			logger.String("assignment_id", assignmentID),
			logger.Float64("distance_km", distanceKm),
			logger.Err(err))
		return err
	}
	return nil
}

// GetAssignment retrieves an assignment by id
func (uc *jobUC) GetAssignment(ctx context.Context, assignmentID string) (*models.Assignment, error) {
	return uc.jobRepo.GetAssignment(ctx, assignmentID)
}

// ListInspections returns the inspections recorded for an assignment
func (uc *jobUC) ListInspections(ctx context.Context, assignmentID string) ([]*models.VehicleInspection, error) {
	return uc.jobRepo.ListInspectionsByAssignment(ctx, assignmentID)
}

// publishEvent publishes a lifecycle event; failures are logged but do not
// fail the already-committed state change.
func (uc *jobUC) publishEvent(ctx context.Context, publish func(context.Context, models.JobEvent) error, job *models.Job, assignment *models.Assignment) {
	event := models.JobEvent{
		JobID:      job.ID.String(),
		DealerID:   job.DealerID.String(),
		Status:     job.Status,
		OccurredAt: time.Now(),
	}
	if assignment != nil {
		event.AssignmentID = assignment.ID.String()
		event.DriverID = assignment.DriverID.String()
	}

	if err := publish(ctx, event); err != nil {
		logger.Warn("Failed to publish job event",
			logger.String("job_id", event.JobID),
			logger.String("status", string(event.Status)),
			logger.Err(err))
	}
}
