package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/internal/utils"
	"github.com/dealerdrive/dealerdrive/services/tracking"
)

// trackingUC implements the tracking.TrackingUC interface. Active drives live
// in an in-memory registry keyed by driver ID; Redis holds the externally
// visible last-position and history state.
type trackingUC struct {
	cfg          *models.Config
	trackingRepo tracking.TrackingRepo
	trackingGW   tracking.TrackingGW

	mu          sync.Mutex
	drives      map[string]*models.ActiveDrive
	subscribers map[string]map[string]func(models.DriveStats)

	now func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg *models.Config,
	trackingRepo tracking.TrackingRepo,
	trackingGW tracking.TrackingGW,
) (tracking.TrackingUC, error) {
	return &trackingUC{
		cfg:          cfg,
		trackingRepo: trackingRepo,
		trackingGW:   trackingGW,
		drives:       make(map[string]*models.ActiveDrive),
		subscribers:  make(map[string]map[string]func(models.DriveStats)),
		now:          time.Now,
	}, nil
}

// StartDrive begins tracking for a driver. A driver can have at most one
// active drive.
func (uc *trackingUC) StartDrive(ctx context.Context, req models.DriveStartRequest) (*models.ActiveDrive, error) {
	uc.mu.Lock()
	if _, exists := uc.drives[req.DriverID]; exists {
		uc.mu.Unlock()
		return nil, tracking.ErrAlreadyTracking
	}

	drive := &models.ActiveDrive{
		AssignmentID: req.AssignmentID,
		JobID:        req.JobID,
		DriverID:     req.DriverID,
		StartedAt:    uc.now(),
		Positions:    make([]models.Location, 0),
	}
	uc.drives[req.DriverID] = drive
	uc.mu.Unlock()

	if err := uc.trackingRepo.AddActiveDriver(ctx, req.DriverID); err != nil {
		logger.Warn("Failed to register active driver in redis",
			logger.String("driver_id", req.DriverID),
			logger.Err(err))
	}

	logger.Info("Drive tracking started",
		logger.String("driver_id", req.DriverID),
		logger.String("assignment_id", req.AssignmentID),
		logger.String("job_id", req.JobID))

	return uc.snapshotDrive(drive), nil
}

// OnPositionUpdate folds a GPS fix into the driver's active drive. Fixes that
// move less than the jitter floor are discarded so parked vehicles do not
// accrue distance from GPS noise.
func (uc *trackingUC) OnPositionUpdate(ctx context.Context, driverID string, loc models.Location) (*models.DriveStats, error) {
	if !utils.ValidateCoordinates(loc.Latitude, loc.Longitude) {
		return nil, tracking.ErrInvalidLocation
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = uc.now()
	}

	uc.mu.Lock()
	drive, exists := uc.drives[driverID]
	if !exists {
		uc.mu.Unlock()
		return nil, tracking.ErrNoActiveDrive
	}

	last := drive.LastPosition()
	if last != nil {
		grace := time.Duration(uc.cfg.Tracking.StalePositionGrace) * time.Second
		if loc.Timestamp.Before(last.Timestamp.Add(-grace)) {
			uc.mu.Unlock()
			return nil, tracking.ErrStalePosition
		}

		legM := utils.CalculateDistanceM(utils.GeoPointFromLocation(*last), utils.GeoPointFromLocation(loc))
		if legM < uc.cfg.Tracking.JitterFloorM {
			// Below the noise floor: keep the previous anchor point.
			stats := uc.statsLocked(drive)
			uc.mu.Unlock()
			return stats, nil
		}
		drive.DistanceKm += legM / 1000.0
	}

	drive.Positions = append(drive.Positions, loc)
	stats := uc.statsLocked(drive)
	assignmentID, jobID := drive.AssignmentID, drive.JobID
	driveCopy := uc.snapshotDrive(drive)
	uc.mu.Unlock()

	if err := uc.trackingRepo.StoreLastPosition(ctx, driveCopy, loc); err != nil {
		logger.Warn("Failed to store last position",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
	if err := uc.trackingRepo.AppendHistory(ctx, assignmentID, loc); err != nil {
		logger.Warn("Failed to append position history",
			logger.String("assignment_id", assignmentID),
			logger.Err(err))
	}

	agg := models.LocationAggregate{
		AssignmentID: assignmentID,
		JobID:        jobID,
		DriverID:     driverID,
		DistanceKm:   stats.DistanceKm,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
	}
	if err := uc.trackingGW.PublishLocationAggregate(ctx, agg); err != nil {
		logger.Warn("Failed to publish location aggregate",
			logger.String("assignment_id", assignmentID),
			logger.Err(err))
	}

	uc.notifySubscribers(driverID, *stats)

	return stats, nil
}

// GetActiveDrive returns a snapshot of the driver's active drive
func (uc *trackingUC) GetActiveDrive(driverID string) (*models.ActiveDrive, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	drive, exists := uc.drives[driverID]
	if !exists {
		return nil, tracking.ErrNoActiveDrive
	}
	return uc.snapshotDrive(drive), nil
}

// GetCurrentDriveStats returns the current stats snapshot for the driver
func (uc *trackingUC) GetCurrentDriveStats(driverID string) (*models.DriveStats, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	drive, exists := uc.drives[driverID]
	if !exists {
		return nil, tracking.ErrNoActiveDrive
	}
	return uc.statsLocked(drive), nil
}

// CompleteDrive ends tracking, clears the per-driver Redis state and
// publishes the final distance for the jobs service to record.
func (uc *trackingUC) CompleteDrive(ctx context.Context, driverID string) (*models.DriveCompletedEvent, error) {
	uc.mu.Lock()
	drive, exists := uc.drives[driverID]
	if !exists {
		uc.mu.Unlock()
		return nil, tracking.ErrNoActiveDrive
	}
	delete(uc.drives, driverID)
	delete(uc.subscribers, driverID)
	uc.mu.Unlock()

	event := models.DriveCompletedEvent{
		AssignmentID: drive.AssignmentID,
		JobID:        drive.JobID,
		DriverID:     drive.DriverID,
		DistanceKm:   drive.DistanceKm,
		StartedAt:    drive.StartedAt,
		EndedAt:      uc.now(),
	}

	if err := uc.trackingRepo.ClearDriveData(ctx, driverID); err != nil {
		logger.Warn("Failed to clear drive data",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	if err := uc.trackingGW.PublishDriveCompleted(ctx, event); err != nil {
		logger.Error("Failed to publish drive completed event",
			logger.String("assignment_id", event.AssignmentID),
			logger.Err(err))
	}

	logger.Info("Drive tracking completed",
		logger.String("driver_id", driverID),
		logger.String("assignment_id", event.AssignmentID),
		logger.Float64("distance_km", event.DistanceKm),
		logger.Int("positions", len(drive.Positions)))

	return &event, nil
}

// Subscribe registers a stats callback for the driver
func (uc *trackingUC) Subscribe(driverID string, fn func(models.DriveStats)) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uuid.New().String()
	if uc.subscribers[driverID] == nil {
		uc.subscribers[driverID] = make(map[string]func(models.DriveStats))
	}
	uc.subscribers[driverID][id] = fn
	return id
}

// Unsubscribe removes a previously registered callback
func (uc *trackingUC) Unsubscribe(driverID, subscriptionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	subs, exists := uc.subscribers[driverID]
	if !exists {
		return
	}
	delete(subs, subscriptionID)
	if len(subs) == 0 {
		delete(uc.subscribers, driverID)
	}
}

// notifySubscribers invokes callbacks outside the registry lock
func (uc *trackingUC) notifySubscribers(driverID string, stats models.DriveStats) {
	uc.mu.Lock()
	callbacks := make([]func(models.DriveStats), 0, len(uc.subscribers[driverID]))
	for _, fn := range uc.subscribers[driverID] {
		callbacks = append(callbacks, fn)
	}
	uc.mu.Unlock()

	for _, fn := range callbacks {
		fn(stats)
	}
}

// statsLocked builds a stats snapshot; the caller must hold uc.mu
func (uc *trackingUC) statsLocked(drive *models.ActiveDrive) *models.DriveStats {
	updatedAt := drive.StartedAt
	if last := drive.LastPosition(); last != nil {
		updatedAt = last.Timestamp
	}
	return &models.DriveStats{
		AssignmentID: drive.AssignmentID,
		JobID:        drive.JobID,
		DriverID:     drive.DriverID,
		Elapsed:      uc.now().Sub(drive.StartedAt),
		DistanceKm:   drive.DistanceKm,
		UpdatedAt:    updatedAt,
	}
}

// snapshotDrive copies the drive so callers cannot mutate registry state
func (uc *trackingUC) snapshotDrive(drive *models.ActiveDrive) *models.ActiveDrive {
	positions := make([]models.Location, len(drive.Positions))
	copy(positions, drive.Positions)
	return &models.ActiveDrive{
		AssignmentID: drive.AssignmentID,
		JobID:        drive.JobID,
		DriverID:     drive.DriverID,
		StartedAt:    drive.StartedAt,
		Positions:    positions,
		DistanceKm:   drive.DistanceKm,
	}
}
