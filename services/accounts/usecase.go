package accounts

import (
	"context"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// AccountUC defines the interface for account business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/dealerdrive/dealerdrive/services/accounts AccountUC
type AccountUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
}
