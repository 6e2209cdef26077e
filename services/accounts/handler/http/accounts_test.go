package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/accounts"
	"github.com/dealerdrive/dealerdrive/services/accounts/mocks"
)

func setupHandler(t *testing.T) (*mocks.MockAccountUC, *AccountsHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAccountUC(ctrl)
	return mockUC, NewAccountsHandler(mockUC)
}

func jsonContext(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Handler_Success(t *testing.T) {
	mockUC, handler := setupHandler(t)
	e := echo.New()

	reqBody := models.RegisterRequest{
		Role:     models.RoleDealer,
		Email:    "dealer@example.com",
		Password: "s3cret-pass",
		Name:     "PT Maju Motor",
	}
	c, rec := jsonContext(e, http.MethodPost, "/accounts/register", reqBody)

	mockUC.EXPECT().Register(gomock.Any(), reqBody).Return(&models.AuthResponse{
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
		Account:   &models.Account{ID: uuid.New(), Role: models.RoleDealer},
	}, nil)

	err := handler.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_Handler_EmailTaken(t *testing.T) {
	mockUC, handler := setupHandler(t)
	e := echo.New()

	reqBody := models.RegisterRequest{
		Role:     models.RoleDriver,
		Email:    "driver@example.com",
		Password: "s3cret-pass",
	}
	c, rec := jsonContext(e, http.MethodPost, "/accounts/register", reqBody)

	mockUC.EXPECT().Register(gomock.Any(), reqBody).Return(nil, accounts.ErrEmailTaken)

	err := handler.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_Handler_MissingPassword(t *testing.T) {
	_, handler := setupHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/accounts/register", models.RegisterRequest{
		Role:  models.RoleDriver,
		Email: "driver@example.com",
	})

	err := handler.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Handler_Success(t *testing.T) {
	mockUC, handler := setupHandler(t)
	e := echo.New()

	reqBody := models.LoginRequest{Email: "driver@example.com", Password: "s3cret-pass"}
	c, rec := jsonContext(e, http.MethodPost, "/accounts/login", reqBody)

	mockUC.EXPECT().Login(gomock.Any(), reqBody).Return(&models.AuthResponse{
		Token:     "token",
		ExpiresAt: time.Now().Add(time.Hour),
		Account:   &models.Account{ID: uuid.New(), Role: models.RoleDriver},
	}, nil)

	err := handler.Login(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_Handler_InvalidCredentials(t *testing.T) {
	mockUC, handler := setupHandler(t)
	e := echo.New()

	reqBody := models.LoginRequest{Email: "driver@example.com", Password: "wrong"}
	c, rec := jsonContext(e, http.MethodPost, "/accounts/login", reqBody)

	mockUC.EXPECT().Login(gomock.Any(), reqBody).Return(nil, accounts.ErrInvalidCredentials)

	err := handler.Login(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMe_Handler_Success(t *testing.T) {
	mockUC, handler := setupHandler(t)
	e := echo.New()

	userID := uuid.New()
	c, rec := jsonContext(e, http.MethodGet, "/accounts/me", nil)
	c.Set("user_id", userID)

	mockUC.EXPECT().GetAccount(gomock.Any(), userID.String()).
		Return(&models.Account{ID: userID, Role: models.RoleDealer}, nil)

	err := handler.GetMe(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMe_Handler_MissingUser(t *testing.T) {
	_, handler := setupHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodGet, "/accounts/me", nil)

	err := handler.GetMe(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
