package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	natspkg "github.com/dealerdrive/dealerdrive/internal/pkg/nats"
	"github.com/dealerdrive/dealerdrive/services/jobs"
)

// JobsHandler consumes tracking events for the jobs service
type JobsHandler struct {
	jobUC      jobs.JobUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewJobsHandler creates a new jobs NATS handler
func NewJobsHandler(jobUC jobs.JobUC, client *natspkg.Client) *JobsHandler {
	return &JobsHandler{
		jobUC:      jobUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to the tracking subjects the jobs service
// consumes
func (h *JobsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectDriveCompleted, "jobs-service", h.handleDriveCompleted)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	logger.Info("Jobs NATS consumers initialized",
		logger.String("subject", constants.SubjectDriveCompleted))
	return nil
}

// handleDriveCompleted records the tracked drive distance on the assignment
func (h *JobsHandler) handleDriveCompleted(msg *nats.Msg) {
	var event models.DriveCompletedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode drive completed event",
			logger.ErrorField(err))
		return
	}

	if err := h.jobUC.RecordDriveDistance(context.Background(), event.AssignmentID, event.DistanceKm); err != nil {
		logger.Error("Failed to record drive distance from event",
			logger.String("assignment_id", event.AssignmentID),
			logger.ErrorField(err))
		return
	}

	logger.Info("Recorded tracked drive distance",
		logger.String("assignment_id", event.AssignmentID),
		logger.Float64("distance_km", event.DistanceKm))
}
