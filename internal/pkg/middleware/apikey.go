package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/internal/utils"
)

const (
	// APIKeyHeader is the header carrying internal service-to-service keys
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for internal routes
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates an API key middleware from configuration
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"jobs-service":     cfg.JobsService,
			"tracking-service": cfg.TrackingService,
			"accounts-service": cfg.AccountsService,
		},
	}
}

// Handler validates the API key against the allowed services
func (m *APIKeyMiddleware) Handler(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				if m.keys[service] != "" && strings.EqualFold(apiKey, m.keys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
