package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/database"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// TrackingRepository implements the tracking.TrackingRepo interface backed by
// Redis
type TrackingRepository struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(
	cfg *models.Config,
	redis *database.RedisClient,
) *TrackingRepository {
	return &TrackingRepository{
		cfg:   cfg,
		redis: redis,
	}
}

func (r *TrackingRepository) ttl() time.Duration {
	return time.Duration(r.cfg.Tracking.LocationTTLHours) * time.Hour
}

// AddActiveDriver registers the driver in the active-drivers set
func (r *TrackingRepository) AddActiveDriver(ctx context.Context, driverID string) error {
	return r.redis.SAdd(ctx, constants.KeyActiveDrivers, driverID)
}

// RemoveActiveDriver drops the driver from the active-drivers set
func (r *TrackingRepository) RemoveActiveDriver(ctx context.Context, driverID string) error {
	return r.redis.SRem(ctx, constants.KeyActiveDrivers, driverID)
}

// StoreLastPosition writes the last-known position hash and refreshes the
// driver geo index
func (r *TrackingRepository) StoreLastPosition(ctx context.Context, drive *models.ActiveDrive, loc models.Location) error {
	key := fmt.Sprintf(constants.KeyDriveLast, drive.DriverID)

	fields := map[string]interface{}{
		constants.FieldLatitude:     strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude:    strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldTimestamp:    strconv.FormatInt(loc.Timestamp.UnixMilli(), 10),
		constants.FieldAssignmentID: drive.AssignmentID,
		constants.FieldJobID:        drive.JobID,
		constants.FieldDistance:     strconv.FormatFloat(drive.DistanceKm, 'f', -1, 64),
	}
	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		return err
	}
	if err := r.redis.Expire(ctx, key, r.ttl()); err != nil {
		return err
	}

	return r.redis.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, drive.DriverID)
}

// GetLastPosition retrieves the last-known position for a driver, or nil when
// none is stored
func (r *TrackingRepository) GetLastPosition(ctx context.Context, driverID string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyDriveLast, driverID)

	values, err := r.redis.HMGet(ctx, key, constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp)
	if err != nil {
		return nil, err
	}
	if values[0] == "" || values[1] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt latitude for driver %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt longitude for driver %s: %w", driverID, err)
	}

	loc := &models.Location{Latitude: lat, Longitude: lng}
	if values[2] != "" {
		millis, err := strconv.ParseInt(values[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt timestamp for driver %s: %w", driverID, err)
		}
		loc.Timestamp = time.UnixMilli(millis)
	}

	return loc, nil
}

// AppendHistory pushes a fix onto the per-assignment history list, trimming it
// to the configured cap
func (r *TrackingRepository) AppendHistory(ctx context.Context, assignmentID string, loc models.Location) error {
	key := fmt.Sprintf(constants.KeyDriveHistory, assignmentID)

	entry := fmt.Sprintf("%s|%s|%d",
		strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		loc.Timestamp.UnixMilli())

	if err := r.redis.RPush(ctx, key, entry); err != nil {
		return err
	}
	if max := int64(r.cfg.Tracking.HistoryMaxPoints); max > 0 {
		if err := r.redis.LTrim(ctx, key, -max, -1); err != nil {
			return err
		}
	}
	return r.redis.Expire(ctx, key, r.ttl())
}

// GetHistory returns the recorded fixes for an assignment in arrival order
func (r *TrackingRepository) GetHistory(ctx context.Context, assignmentID string) ([]models.Location, error) {
	key := fmt.Sprintf(constants.KeyDriveHistory, assignmentID)

	entries, err := r.redis.LRange(ctx, key, 0, -1)
	if err != nil {
		return nil, err
	}

	history := make([]models.Location, 0, len(entries))
	for _, entry := range entries {
		loc, err := parseHistoryEntry(entry)
		if err != nil {
			return nil, err
		}
		history = append(history, loc)
	}
	return history, nil
}

// ClearDriveData removes the per-driver tracking keys once a drive ends
func (r *TrackingRepository) ClearDriveData(ctx context.Context, driverID string) error {
	if err := r.redis.Delete(ctx, fmt.Sprintf(constants.KeyDriveLast, driverID)); err != nil {
		return err
	}
	if err := r.redis.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return err
	}
	return r.redis.SRem(ctx, constants.KeyActiveDrivers, driverID)
}

func parseHistoryEntry(entry string) (models.Location, error) {
	var lat, lng float64
	var millis int64
	if _, err := fmt.Sscanf(entry, "%f|%f|%d", &lat, &lng, &millis); err != nil {
		return models.Location{}, fmt.Errorf("corrupt history entry %q: %w", entry, err)
	}
	return models.Location{Latitude: lat, Longitude: lng, Timestamp: time.UnixMilli(millis)}, nil
}
