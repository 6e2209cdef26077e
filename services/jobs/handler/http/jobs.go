package http

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/internal/pkg/storage"
	"github.com/dealerdrive/dealerdrive/internal/utils"
	"github.com/dealerdrive/dealerdrive/services/jobs"
)

// JobsHandler handles HTTP requests for job lifecycle operations
type JobsHandler struct {
	cfg        *models.Config
	jobUC      jobs.JobUC
	photoStore storage.PhotoStore
}

// NewJobsHandler creates a new jobs HTTP handler
func NewJobsHandler(cfg *models.Config, jobUC jobs.JobUC, photoStore storage.PhotoStore) *JobsHandler {
	return &JobsHandler{
		cfg:        cfg,
		jobUC:      jobUC,
		photoStore: photoStore,
	}
}

// CreateJob handles a dealer submitting a new job
func (h *JobsHandler) CreateJob(c echo.Context) error {
	var req models.JobCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}
	req.CreatedBy = userID.String()
	if req.DealerID == "" {
		req.DealerID = userID.String()
	}

	job, err := h.jobUC.CreateJob(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err, "Failed to create job")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Job created successfully", job)
}

// GetJob handles retrieving a single job
func (h *JobsHandler) GetJob(c echo.Context) error {
	jobID := c.Param("jobID")
	if jobID == "" {
		return utils.BadRequestResponse(c, "Job ID is required")
	}

	job, err := h.jobUC.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return h.mapError(c, err, "Failed to get job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job retrieved successfully", job)
}

// ListOpenJobs handles the driver-facing job board
func (h *JobsHandler) ListOpenJobs(c echo.Context) error {
	openJobs, err := h.jobUC.ListOpenJobs(c.Request().Context())
	if err != nil {
		return h.mapError(c, err, "Failed to list open jobs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Open jobs retrieved successfully", openJobs)
}

// ListMyDealerJobs handles a dealer listing their own jobs
func (h *JobsHandler) ListMyDealerJobs(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	dealerJobs, err := h.jobUC.ListDealerJobs(c.Request().Context(), userID.String())
	if err != nil {
		return h.mapError(c, err, "Failed to list dealer jobs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dealer jobs retrieved successfully", dealerJobs)
}

// ListMyDriverJobs handles a driver listing the jobs they were assigned to
func (h *JobsHandler) ListMyDriverJobs(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	driverJobs, err := h.jobUC.ListDriverJobs(c.Request().Context(), userID.String())
	if err != nil {
		return h.mapError(c, err, "Failed to list driver jobs")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver jobs retrieved successfully", driverJobs)
}

// AcceptJob handles a driver claiming an open job
func (h *JobsHandler) AcceptJob(c echo.Context) error {
	jobID := c.Param("jobID")
	if jobID == "" {
		return utils.BadRequestResponse(c, "Job ID is required")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	assignment, err := h.jobUC.AcceptJob(c.Request().Context(), jobID, userID.String())
	if err != nil {
		return h.mapError(c, err, "Failed to accept job")
	}

	logger.Info("Driver accepted job",
		logger.String("job_id", jobID),
		logger.String("driver_id", userID.String()),
		logger.String("assignment_id", assignment.ID.String()))

	return utils.SuccessResponse(c, http.StatusOK, "Job accepted successfully", assignment)
}

// StartJob handles the driver beginning the drive
func (h *JobsHandler) StartJob(c echo.Context) error {
	assignmentID := c.Param("assignmentID")
	if assignmentID == "" {
		return utils.BadRequestResponse(c, "Assignment ID is required")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req models.JobStartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.AssignmentID = assignmentID
	req.DriverID = userID.String()

	assignment, err := h.jobUC.StartJob(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err, "Failed to start job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job started successfully", assignment)
}

// CompleteJob handles the driver ending the drive with proof of delivery
func (h *JobsHandler) CompleteJob(c echo.Context) error {
	assignmentID := c.Param("assignmentID")
	if assignmentID == "" {
		return utils.BadRequestResponse(c, "Assignment ID is required")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req models.JobCompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.AssignmentID = assignmentID
	req.DriverID = userID.String()

	assignment, err := h.jobUC.CompleteJob(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err, "Failed to complete job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job completed successfully", assignment)
}

// CancelJob handles a dealer cancelling a job before the drive starts
func (h *JobsHandler) CancelJob(c echo.Context) error {
	jobID := c.Param("jobID")
	if jobID == "" {
		return utils.BadRequestResponse(c, "Job ID is required")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.jobUC.CancelJob(c.Request().Context(), jobID, userID.String(), req.Reason); err != nil {
		return h.mapError(c, err, "Failed to cancel job")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Job cancelled successfully", nil)
}

// GetAssignment handles retrieving a single assignment
func (h *JobsHandler) GetAssignment(c echo.Context) error {
	assignmentID := c.Param("assignmentID")
	if assignmentID == "" {
		return utils.BadRequestResponse(c, "Assignment ID is required")
	}

	assignment, err := h.jobUC.GetAssignment(c.Request().Context(), assignmentID)
	if err != nil {
		return h.mapError(c, err, "Failed to get assignment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assignment retrieved successfully", assignment)
}

// ListInspections handles retrieving the inspections for an assignment
func (h *JobsHandler) ListInspections(c echo.Context) error {
	assignmentID := c.Param("assignmentID")
	if assignmentID == "" {
		return utils.BadRequestResponse(c, "Assignment ID is required")
	}

	inspections, err := h.jobUC.ListInspections(c.Request().Context(), assignmentID)
	if err != nil {
		return h.mapError(c, err, "Failed to list inspections")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Inspections retrieved successfully", inspections)
}

// UploadPhotos handles multipart inspection photo uploads, returning the
// stored URLs for use in start and complete requests
func (h *JobsHandler) UploadPhotos(c echo.Context) error {
	assignmentID := c.Param("assignmentID")
	if assignmentID == "" {
		return utils.BadRequestResponse(c, "Assignment ID is required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid multipart form: "+err.Error())
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return utils.BadRequestResponse(c, "At least one photo is required")
	}
	if len(files) > h.cfg.Jobs.MaxInspectionPhotos {
		return utils.BadRequestResponse(c, fmt.Sprintf("At most %d photos may be uploaded at once", h.cfg.Jobs.MaxInspectionPhotos))
	}

	maxBytes := int64(h.cfg.Jobs.MaxPhotoSizeMB) * 1024 * 1024
	urls := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > maxBytes {
			return utils.BadRequestResponse(c, fmt.Sprintf("Photo %s exceeds the %dMB size limit", file.Filename, h.cfg.Jobs.MaxPhotoSizeMB))
		}

		src, err := file.Open()
		if err != nil {
			return utils.InternalServerErrorResponse(c, "Failed to read uploaded photo: "+err.Error())
		}

		objectPath := fmt.Sprintf("assignments/%s/%d%s", assignmentID, time.Now().UnixNano(), path.Ext(file.Filename))
		contentType := file.Header.Get("Content-Type")

		url, err := h.photoStore.Upload(c.Request().Context(), objectPath, src, file.Size, contentType)
		src.Close()
		if err != nil {
			logger.Error("Failed to upload inspection photo",
				logger.String("assignment_id", assignmentID),
				logger.String("filename", file.Filename),
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to store photo")
		}

		urls = append(urls, url)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Photos uploaded successfully", map[string]interface{}{
		"photo_urls": urls,
	})
}

// mapError translates use case sentinel errors into HTTP responses
func (h *JobsHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, jobs.ErrJobNotFound), errors.Is(err, jobs.ErrAssignmentNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, jobs.ErrNotOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, jobs.ErrAlreadyAssigned), errors.Is(err, jobs.ErrConflictingUpdate):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, jobs.ErrInvalidTransition),
		errors.Is(err, jobs.ErrMissingPrerequisite),
		errors.Is(err, jobs.ErrInvalidOdometer):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, jobs.ErrInvalidVIN), errors.Is(err, jobs.ErrInvalidJobType):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
