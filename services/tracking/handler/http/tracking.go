package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/internal/utils"
	"github.com/dealerdrive/dealerdrive/services/tracking"
)

// TrackingHandler handles HTTP requests for drive tracking
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// StartDrive begins tracking for the authenticated driver
func (h *TrackingHandler) StartDrive(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req models.DriveStartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.DriverID = userID.String()

	if req.AssignmentID == "" || req.JobID == "" {
		return utils.BadRequestResponse(c, "Assignment ID and job ID are required")
	}

	drive, err := h.trackingUC.StartDrive(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err, "Failed to start drive tracking")
	}

	logger.Info("Drive tracking started via HTTP",
		logger.String("driver_id", req.DriverID),
		logger.String("assignment_id", req.AssignmentID))

	return utils.SuccessResponse(c, http.StatusCreated, "Drive tracking started", drive)
}

// PostPosition folds a single fix into the active drive and returns the
// resulting stats snapshot
func (h *TrackingHandler) PostPosition(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var loc models.Location
	if err := c.Bind(&loc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	stats, err := h.trackingUC.OnPositionUpdate(c.Request().Context(), userID.String(), loc)
	if err != nil {
		return h.mapError(c, err, "Failed to process position")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position recorded", stats)
}

// GetActiveDrive returns the driver's active drive snapshot
func (h *TrackingHandler) GetActiveDrive(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	drive, err := h.trackingUC.GetActiveDrive(userID.String())
	if err != nil {
		return h.mapError(c, err, "Failed to get active drive")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active drive retrieved", drive)
}

// GetDriveStats returns the driver's current stats snapshot
func (h *TrackingHandler) GetDriveStats(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	stats, err := h.trackingUC.GetCurrentDriveStats(userID.String())
	if err != nil {
		return h.mapError(c, err, "Failed to get drive stats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drive stats retrieved", stats)
}

// CompleteDrive ends tracking and returns the final drive summary
func (h *TrackingHandler) CompleteDrive(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	event, err := h.trackingUC.CompleteDrive(c.Request().Context(), userID.String())
	if err != nil {
		return h.mapError(c, err, "Failed to complete drive")
	}

	logger.Info("Drive tracking completed via HTTP",
		logger.String("driver_id", userID.String()),
		logger.String("assignment_id", event.AssignmentID),
		logger.Float64("distance_km", event.DistanceKm))

	return utils.SuccessResponse(c, http.StatusOK, "Drive completed", event)
}

// GetDriverDrive returns the active drive for any driver, for internal
// service-to-service calls
func (h *TrackingHandler) GetDriverDrive(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	drive, err := h.trackingUC.GetActiveDrive(driverID)
	if err != nil {
		return h.mapError(c, err, "Failed to get active drive")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active drive retrieved", drive)
}

func (h *TrackingHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, tracking.ErrNoActiveDrive):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, tracking.ErrAlreadyTracking):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, tracking.ErrInvalidLocation), errors.Is(err, tracking.ErrStalePosition):
		return utils.UnprocessableEntityResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
