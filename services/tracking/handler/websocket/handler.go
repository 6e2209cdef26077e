package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	wspkg "github.com/dealerdrive/dealerdrive/internal/pkg/websocket"
	"github.com/dealerdrive/dealerdrive/services/tracking"
)

// TrackingHandler streams drive stats to drivers and folds their position
// updates into the tracker
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
	manager    *wspkg.Manager
}

// NewTrackingHandler creates a new tracking WebSocket handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, manager *wspkg.Manager) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
		manager:    manager,
	}
}

// HandleConnection upgrades the request and serves the tracking socket
func (h *TrackingHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// handleClient runs the per-connection loop. Every accepted fix is answered
// with a drive_stats frame; subscription pushes cover stats produced by other
// producers for the same driver.
func (h *TrackingHandler) handleClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	subID := h.trackingUC.Subscribe(client.UserID, func(stats models.DriveStats) {
		if err := h.manager.SendMessage(ws, constants.EventDriveStats, stats); err != nil {
			logger.Warn("Failed to push drive stats",
				logger.String("driver_id", client.UserID),
				logger.Err(err))
		}
	})
	defer h.trackingUC.Unsubscribe(client.UserID, subID)

	logger.Info("Tracking socket connected",
		logger.String("driver_id", client.UserID),
		logger.String("role", client.Role))

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Tracking socket closed unexpectedly",
					logger.String("driver_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		if err := h.handleMessage(client, ws, msg); err != nil {
			return err
		}
	}
}

func (h *TrackingHandler) handleMessage(client *models.WebSocketClient, ws *websocket.Conn, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(ws, constants.EventPong, nil)
	case constants.EventPositionUpdate:
		return h.handlePositionUpdate(client, ws, msg.Data)
	default:
		return h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

func (h *TrackingHandler) handlePositionUpdate(client *models.WebSocketClient, ws *websocket.Conn, data json.RawMessage) error {
	var loc models.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "invalid position payload")
	}

	// Accepted fixes reach the client through the stats subscription, so no
	// direct reply is needed here.
	_, err := h.trackingUC.OnPositionUpdate(context.Background(), client.UserID, loc)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrNoActiveDrive):
			return h.manager.SendErrorMessage(ws, constants.ErrorNoActiveDrive, err.Error())
		case errors.Is(err, tracking.ErrInvalidLocation), errors.Is(err, tracking.ErrStalePosition):
			return h.manager.SendErrorMessage(ws, constants.ErrorInvalidLocation, err.Error())
		default:
			logger.Error("Position update failed",
				logger.String("driver_id", client.UserID),
				logger.Err(err))
			return h.manager.SendErrorMessage(ws, constants.ErrorInternalError, "failed to process position")
		}
	}

	return nil
}
