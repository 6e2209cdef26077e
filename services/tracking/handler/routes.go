package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/middleware"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	natspkg "github.com/dealerdrive/dealerdrive/internal/pkg/nats"
	wspkg "github.com/dealerdrive/dealerdrive/internal/pkg/websocket"
	"github.com/dealerdrive/dealerdrive/services/tracking"
	httpHandler "github.com/dealerdrive/dealerdrive/services/tracking/handler/http"
	natsHandler "github.com/dealerdrive/dealerdrive/services/tracking/handler/nats"
	wsHandler "github.com/dealerdrive/dealerdrive/services/tracking/handler/websocket"
)

// Handler combines all handlers for the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingWS   *wsHandler.TrackingHandler
	trackingNATS *natsHandler.TrackingHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	trackingUC tracking.TrackingUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		trackingWS:   wsHandler.NewTrackingHandler(trackingUC, wsManager),
		trackingNATS: natsHandler.NewTrackingHandler(trackingUC, natsClient),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Driver endpoints
	drives := e.Group("/drives", auth, middleware.RequireRole(models.RoleDriver))
	drives.POST("/start", h.trackingHTTP.StartDrive)
	drives.POST("/position", h.trackingHTTP.PostPosition)
	drives.GET("/active", h.trackingHTTP.GetActiveDrive)
	drives.GET("/stats", h.trackingHTTP.GetDriveStats)
	drives.POST("/complete", h.trackingHTTP.CompleteDrive)

	// WebSocket endpoint (token auth happens inside the manager)
	e.GET("/ws/tracking", h.trackingWS.HandleConnection)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKey.Handler("tracking-service"))
	internal.GET("/drivers/:driverID/drive", h.trackingHTTP.GetDriverDrive)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.trackingNATS.InitNATSConsumers()
}
