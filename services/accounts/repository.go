package accounts

import (
	"context"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// AccountRepo defines the interface for account data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/dealerdrive/dealerdrive/services/accounts AccountRepo
type AccountRepo interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByID(ctx context.Context, accountID string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}
