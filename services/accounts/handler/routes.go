package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/middleware"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/accounts"
	httpHandler "github.com/dealerdrive/dealerdrive/services/accounts/handler/http"
)

// Handler combines all handlers for the accounts service
type Handler struct {
	accountsHTTP *httpHandler.AccountsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(accountUC accounts.AccountUC, cfg *models.Config) *Handler {
	return &Handler{
		accountsHTTP: httpHandler.NewAccountsHandler(accountUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Public endpoints
	e.POST("/accounts/register", h.accountsHTTP.Register)
	e.POST("/accounts/login", h.accountsHTTP.Login)

	// Authenticated endpoints
	e.GET("/accounts/me", h.accountsHTTP.GetMe, auth)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", apiKey.Handler("accounts-service"))
	internal.GET("/accounts/:accountID", h.accountsHTTP.GetAccount)
}
