package nats

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nats-io/nats.go"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	natspkg "github.com/dealerdrive/dealerdrive/internal/pkg/nats"
	"github.com/dealerdrive/dealerdrive/services/tracking"
)

// TrackingHandler consumes job lifecycle events for the tracking service.
// Tracking follows the job: the drive starts when the job starts and stops
// when the job completes or is cancelled.
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewTrackingHandler creates a new tracking NATS handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, client *natspkg.Client) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to the job subjects the tracking service
// consumes
func (h *TrackingHandler) InitNATSConsumers() error {
	subjects := map[string]nats.MsgHandler{
		constants.SubjectJobStarted:   h.handleJobStarted,
		constants.SubjectJobCompleted: h.handleJobEnded,
		constants.SubjectJobCancelled: h.handleJobEnded,
	}

	for subject, handler := range subjects {
		sub, err := h.natsClient.QueueSubscribe(subject, "tracking-service", handler)
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Tracking NATS consumers initialized",
		logger.Int("subjects", len(subjects)))
	return nil
}

// handleJobStarted begins tracking for the assignment's driver
func (h *TrackingHandler) handleJobStarted(msg *nats.Msg) {
	event, ok := h.decodeJobEvent(msg)
	if !ok || event.DriverID == "" {
		return
	}

	_, err := h.trackingUC.StartDrive(context.Background(), models.DriveStartRequest{
		AssignmentID: event.AssignmentID,
		JobID:        event.JobID,
		DriverID:     event.DriverID,
	})
	if err != nil {
		if errors.Is(err, tracking.ErrAlreadyTracking) {
			logger.Warn("Drive already tracked for started job",
				logger.String("driver_id", event.DriverID),
				logger.String("assignment_id", event.AssignmentID))
			return
		}
		logger.Error("Failed to start drive from job event",
			logger.String("assignment_id", event.AssignmentID),
			logger.ErrorField(err))
		return
	}

	logger.Info("Drive tracking started from job event",
		logger.String("driver_id", event.DriverID),
		logger.String("assignment_id", event.AssignmentID))
}

// handleJobEnded stops tracking for the driver when the job reaches a
// terminal status
func (h *TrackingHandler) handleJobEnded(msg *nats.Msg) {
	event, ok := h.decodeJobEvent(msg)
	if !ok || event.DriverID == "" {
		return
	}

	if _, err := h.trackingUC.CompleteDrive(context.Background(), event.DriverID); err != nil {
		if errors.Is(err, tracking.ErrNoActiveDrive) {
			return
		}
		logger.Error("Failed to complete drive from job event",
			logger.String("driver_id", event.DriverID),
			logger.ErrorField(err))
	}
}

func (h *TrackingHandler) decodeJobEvent(msg *nats.Msg) (models.JobEvent, bool) {
	var event models.JobEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode job event",
			logger.String("subject", msg.Subject),
			logger.ErrorField(err))
		return event, false
	}
	return event, true
}
