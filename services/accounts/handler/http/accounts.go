package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/internal/utils"
	"github.com/dealerdrive/dealerdrive/services/accounts"
)

// AccountsHandler handles HTTP requests for registration and authentication
type AccountsHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountsHandler creates a new accounts HTTP handler
func NewAccountsHandler(accountUC accounts.AccountUC) *AccountsHandler {
	return &AccountsHandler{accountUC: accountUC}
}

// Register handles new account creation
func (h *AccountsHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.accountUC.Register(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err, "Failed to register account")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account registered successfully", resp)
}

// Login handles credential verification and token issuance
func (h *AccountsHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// GetMe handles retrieving the authenticated account's own profile
func (h *AccountsHandler) GetMe(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), userID.String())
	if err != nil {
		return h.mapError(c, err, "Failed to get account")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account retrieved successfully", account)
}

// GetAccount handles service-to-service account lookups
func (h *AccountsHandler) GetAccount(c echo.Context) error {
	accountID := c.Param("accountID")
	if accountID == "" {
		return utils.BadRequestResponse(c, "Account ID is required")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return h.mapError(c, err, "Failed to get account")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account retrieved successfully", account)
}

func (h *AccountsHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, accounts.ErrAccountNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, accounts.ErrEmailTaken):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, accounts.ErrInvalidRole):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
