package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/tracking"
	"github.com/dealerdrive/dealerdrive/services/tracking/mocks"
)

func setupTrackingUC(t *testing.T) (*mocks.MockTrackingRepo, *mocks.MockTrackingGW, tracking.TrackingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)

	cfg := &models.Config{
		Tracking: models.TrackingConfig{
			JitterFloorM:       10,
			StalePositionGrace: 30,
		},
	}

	uc, err := NewTrackingUC(cfg, mockRepo, mockGW)
	require.NoError(t, err)

	return mockRepo, mockGW, uc
}

func startRequest() models.DriveStartRequest {
	return models.DriveStartRequest{
		AssignmentID: uuid.New().String(),
		JobID:        uuid.New().String(),
		DriverID:     uuid.New().String(),
	}
}

func fix(lat, lng float64, ts time.Time) models.Location {
	return models.Location{Latitude: lat, Longitude: lng, Timestamp: ts}
}

func TestStartDrive_OnePerDriver(t *testing.T) {
	mockRepo, _, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)

	drive, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.AssignmentID, drive.AssignmentID)
	assert.Zero(t, drive.DistanceKm)
	assert.Empty(t, drive.Positions)

	_, err = uc.StartDrive(context.Background(), req)
	assert.ErrorIs(t, err, tracking.ErrAlreadyTracking)
}

func TestOnPositionUpdate_AccumulatesDistance(t *testing.T) {
	mockRepo, mockGW, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().AppendHistory(gomock.Any(), req.AssignmentID, gomock.Any()).Return(nil).AnyTimes()
	mockGW.EXPECT().PublishLocationAggregate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	base := time.Now()

	// First fix anchors the drive with no distance.
	stats, err := uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1754, 106.8272, base))
	require.NoError(t, err)
	assert.Zero(t, stats.DistanceKm)

	// 0.001 degrees of latitude is roughly 111 meters.
	stats, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1744, 106.8272, base.Add(10*time.Second)))
	require.NoError(t, err)
	assert.InDelta(t, 0.111, stats.DistanceKm, 0.002)

	stats, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1734, 106.8272, base.Add(20*time.Second)))
	require.NoError(t, err)
	assert.InDelta(t, 0.222, stats.DistanceKm, 0.004)
}

func TestOnPositionUpdate_JitterDiscarded(t *testing.T) {
	mockRepo, mockGW, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockRepo.EXPECT().AppendHistory(gomock.Any(), req.AssignmentID, gomock.Any()).Return(nil).Times(1)
	mockGW.EXPECT().PublishLocationAggregate(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	base := time.Now()
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1754, 106.8272, base))
	require.NoError(t, err)

	// Roughly one meter of movement, well below the 10m floor: distance
	// must not move and the fix must not be persisted.
	stats, err := uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.17539, 106.8272, base.Add(5*time.Second)))
	require.NoError(t, err)
	assert.Zero(t, stats.DistanceKm)

	drive, err := uc.GetActiveDrive(req.DriverID)
	require.NoError(t, err)
	assert.Len(t, drive.Positions, 1)
}

func TestOnPositionUpdate_ParkedVehicleAccruesNothing(t *testing.T) {
	mockRepo, mockGW, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockRepo.EXPECT().AppendHistory(gomock.Any(), req.AssignmentID, gomock.Any()).Return(nil).Times(1)
	mockGW.EXPECT().PublishLocationAggregate(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	base := time.Now()
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1754, 106.8272, base))
	require.NoError(t, err)

	// A parked vehicle emits a cloud of nearby fixes.
	for i := 1; i <= 20; i++ {
		jittered := fix(-6.1754+float64(i%3)*0.000004, 106.8272-float64(i%2)*0.000004, base.Add(time.Duration(i)*5*time.Second))
		stats, err := uc.OnPositionUpdate(context.Background(), req.DriverID, jittered)
		require.NoError(t, err)
		assert.Zero(t, stats.DistanceKm)
	}
}

func TestOnPositionUpdate_NoActiveDrive(t *testing.T) {
	_, _, uc := setupTrackingUC(t)

	_, err := uc.OnPositionUpdate(context.Background(), uuid.New().String(), fix(-6.1754, 106.8272, time.Now()))
	assert.ErrorIs(t, err, tracking.ErrNoActiveDrive)
}

func TestOnPositionUpdate_InvalidCoordinates(t *testing.T) {
	mockRepo, _, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(91.0, 106.8272, time.Now()))
	assert.ErrorIs(t, err, tracking.ErrInvalidLocation)
}

func TestOnPositionUpdate_StaleFixRejected(t *testing.T) {
	mockRepo, mockGW, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockRepo.EXPECT().AppendHistory(gomock.Any(), req.AssignmentID, gomock.Any()).Return(nil).Times(1)
	mockGW.EXPECT().PublishLocationAggregate(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	base := time.Now()
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1754, 106.8272, base))
	require.NoError(t, err)

	// A fix from a minute before the last accepted one is outside the 30s
	// grace window.
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1744, 106.8272, base.Add(-time.Minute)))
	assert.ErrorIs(t, err, tracking.ErrStalePosition)
}

func TestSubscribe_NotifiedOnAcceptedFix(t *testing.T) {
	mockRepo, mockGW, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().AppendHistory(gomock.Any(), req.AssignmentID, gomock.Any()).Return(nil).AnyTimes()
	mockGW.EXPECT().PublishLocationAggregate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	received := make([]models.DriveStats, 0)
	subID := uc.Subscribe(req.DriverID, func(stats models.DriveStats) {
		received = append(received, stats)
	})

	base := time.Now()
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1754, 106.8272, base))
	require.NoError(t, err)
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1744, 106.8272, base.Add(10*time.Second)))
	require.NoError(t, err)

	require.Len(t, received, 2)
	assert.Equal(t, req.AssignmentID, received[0].AssignmentID)
	assert.Greater(t, received[1].DistanceKm, received[0].DistanceKm)

	// After unsubscribing no further snapshots arrive.
	uc.Unsubscribe(req.DriverID, subID)
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1734, 106.8272, base.Add(20*time.Second)))
	require.NoError(t, err)
	assert.Len(t, received, 2)
}

func TestCompleteDrive_PublishesFinalDistance(t *testing.T) {
	mockRepo, mockGW, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().AppendHistory(gomock.Any(), req.AssignmentID, gomock.Any()).Return(nil).AnyTimes()
	mockGW.EXPECT().PublishLocationAggregate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	base := time.Now()
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1754, 106.8272, base))
	require.NoError(t, err)
	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1744, 106.8272, base.Add(10*time.Second)))
	require.NoError(t, err)

	mockRepo.EXPECT().ClearDriveData(gomock.Any(), req.DriverID).Return(nil)
	mockGW.EXPECT().PublishDriveCompleted(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event models.DriveCompletedEvent) error {
			assert.Equal(t, req.AssignmentID, event.AssignmentID)
			assert.InDelta(t, 0.111, event.DistanceKm, 0.002)
			return nil
		})

	event, err := uc.CompleteDrive(context.Background(), req.DriverID)
	require.NoError(t, err)
	assert.InDelta(t, 0.111, event.DistanceKm, 0.002)

	// Registry slot is freed: stats are gone and a new drive may start.
	_, err = uc.GetCurrentDriveStats(req.DriverID)
	assert.ErrorIs(t, err, tracking.ErrNoActiveDrive)

	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	_, err = uc.StartDrive(context.Background(), req)
	assert.NoError(t, err)
}

func TestCompleteDrive_NoActiveDrive(t *testing.T) {
	_, _, uc := setupTrackingUC(t)

	_, err := uc.CompleteDrive(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, tracking.ErrNoActiveDrive)
}

func TestGetActiveDrive_SnapshotIsolated(t *testing.T) {
	mockRepo, mockGW, uc := setupTrackingUC(t)

	req := startRequest()
	mockRepo.EXPECT().AddActiveDriver(gomock.Any(), req.DriverID).Return(nil)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().AppendHistory(gomock.Any(), req.AssignmentID, gomock.Any()).Return(nil).AnyTimes()
	mockGW.EXPECT().PublishLocationAggregate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := uc.StartDrive(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.OnPositionUpdate(context.Background(), req.DriverID, fix(-6.1754, 106.8272, time.Now()))
	require.NoError(t, err)

	snapshot, err := uc.GetActiveDrive(req.DriverID)
	require.NoError(t, err)
	snapshot.Positions[0].Latitude = 0
	snapshot.DistanceKm = 999

	fresh, err := uc.GetActiveDrive(req.DriverID)
	require.NoError(t, err)
	assert.Equal(t, -6.1754, fresh.Positions[0].Latitude)
	assert.Zero(t, fresh.DistanceKm)
}
