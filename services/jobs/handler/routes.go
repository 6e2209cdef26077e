package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/middleware"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	natspkg "github.com/dealerdrive/dealerdrive/internal/pkg/nats"
	"github.com/dealerdrive/dealerdrive/internal/pkg/storage"
	"github.com/dealerdrive/dealerdrive/services/jobs"
	httpHandler "github.com/dealerdrive/dealerdrive/services/jobs/handler/http"
	natsHandler "github.com/dealerdrive/dealerdrive/services/jobs/handler/nats"
)

// Handler combines all handlers for the jobs service
type Handler struct {
	jobsHTTP *httpHandler.JobsHandler
	jobsNATS *natsHandler.JobsHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	jobUC jobs.JobUC,
	natsClient *natspkg.Client,
	photoStore storage.PhotoStore,
	cfg *models.Config,
) *Handler {
	return &Handler{
		jobsHTTP: httpHandler.NewJobsHandler(cfg, jobUC, photoStore),
		jobsNATS: natsHandler.NewJobsHandler(jobUC, natsClient),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Dealer endpoints
	dealers := e.Group("/jobs", auth, middleware.RequireRole(models.RoleDealer))
	dealers.POST("", h.jobsHTTP.CreateJob)
	dealers.POST("/:jobID/cancel", h.jobsHTTP.CancelJob)
	e.GET("/dealers/me/jobs", h.jobsHTTP.ListMyDealerJobs, auth, middleware.RequireRole(models.RoleDealer))

	// Driver endpoints
	drivers := e.Group("", auth, middleware.RequireRole(models.RoleDriver))
	drivers.GET("/jobs/open", h.jobsHTTP.ListOpenJobs)
	drivers.GET("/drivers/me/jobs", h.jobsHTTP.ListMyDriverJobs)
	drivers.POST("/jobs/:jobID/accept", h.jobsHTTP.AcceptJob)
	drivers.POST("/assignments/:assignmentID/start", h.jobsHTTP.StartJob)
	drivers.POST("/assignments/:assignmentID/complete", h.jobsHTTP.CompleteJob)
	drivers.POST("/assignments/:assignmentID/photos", h.jobsHTTP.UploadPhotos)

	// Shared authenticated endpoints
	shared := e.Group("", auth)
	shared.GET("/jobs/:jobID", h.jobsHTTP.GetJob)
	shared.GET("/assignments/:assignmentID", h.jobsHTTP.GetAssignment)
	shared.GET("/assignments/:assignmentID/inspections", h.jobsHTTP.ListInspections)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKey.Handler("jobs-service"))
	internal.GET("/assignments/:assignmentID", h.jobsHTTP.GetAssignment)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.jobsNATS.InitNATSConsumers()
}
