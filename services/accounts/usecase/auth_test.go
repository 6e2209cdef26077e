package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/accounts"
	"github.com/dealerdrive/dealerdrive/services/accounts/mocks"
)

func setupAccountUC(t *testing.T) (*mocks.MockAccountRepo, accounts.AccountUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockAccountRepo(ctrl)
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "dealerdrive",
		},
	}

	uc, err := NewAccountUC(cfg, mockRepo)
	require.NoError(t, err)

	return mockRepo, uc
}

func TestRegister_Success(t *testing.T) {
	mockRepo, uc := setupAccountUC(t)

	req := models.RegisterRequest{
		Role:     models.RoleDriver,
		Email:    "Driver@Example.com",
		Password: "s3cret-pass",
		Name:     "Budi Santoso",
		Phone:    "+6281234567890",
	}

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "driver@example.com").
		Return(nil, accounts.ErrAccountNotFound)
	mockRepo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.Account) error {
			assert.Equal(t, "driver@example.com", a.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)))
			return nil
		})

	resp, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, models.RoleDriver, resp.Account.Role)
}

func TestRegister_EmailTaken(t *testing.T) {
	mockRepo, uc := setupAccountUC(t)

	existing := &models.Account{ID: uuid.New(), Email: "driver@example.com"}
	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "driver@example.com").Return(existing, nil)

	_, err := uc.Register(context.Background(), models.RegisterRequest{
		Role:     models.RoleDriver,
		Email:    "driver@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)
}

func TestRegister_InvalidRole(t *testing.T) {
	_, uc := setupAccountUC(t)

	_, err := uc.Register(context.Background(), models.RegisterRequest{
		Role:     "admin",
		Email:    "x@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, accounts.ErrInvalidRole)
}

func TestLogin_Success(t *testing.T) {
	mockRepo, uc := setupAccountUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &models.Account{
		ID:           uuid.New(),
		Role:         models.RoleDealer,
		Email:        "dealer@example.com",
		PasswordHash: string(hash),
	}
	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "dealer@example.com").Return(account, nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "dealer@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, account.ID, resp.Account.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo, uc := setupAccountUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &models.Account{ID: uuid.New(), Email: "dealer@example.com", PasswordHash: string(hash)}
	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "dealer@example.com").Return(account, nil)

	_, err = uc.Login(context.Background(), models.LoginRequest{
		Email:    "dealer@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo, uc := setupAccountUC(t)

	mockRepo.EXPECT().GetAccountByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, accounts.ErrAccountNotFound)

	_, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)
}
