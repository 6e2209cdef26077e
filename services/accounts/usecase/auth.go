package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/dealerdrive/dealerdrive/internal/pkg/jwt"
	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/accounts"
)

// accountUC implements the accounts.AccountUC interface
type accountUC struct {
	cfg         *models.Config
	accountRepo accounts.AccountRepo
}

// NewAccountUC creates a new account use case
func NewAccountUC(
	cfg *models.Config,
	accountRepo accounts.AccountRepo,
) (accounts.AccountUC, error) {
	return &accountUC{
		cfg:         cfg,
		accountRepo: accountRepo,
	}, nil
}

// Register creates an account and issues a token for it
func (uc *accountUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Role != models.RoleDealer && req.Role != models.RoleDriver {
		return nil, accounts.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := uc.accountRepo.GetAccountByEmail(ctx, email); err == nil && existing != nil {
		return nil, accounts.ErrEmailTaken
	} else if err != nil && !errors.Is(err, accounts.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &models.Account{
		ID:           uuid.New(),
		Role:         req.Role,
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accountRepo.CreateAccount(ctx, account); err != nil {
		logger.Error("Failed to create account",
			logger.String("email", email),
			logger.Err(err))
		return nil, err
	}

	logger.Info("Account registered",
		logger.String("account_id", account.ID.String()),
		logger.String("role", string(account.Role)))

	return uc.issueToken(account)
}

// Login verifies credentials and issues a token
func (uc *accountUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := uc.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return nil, accounts.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, accounts.ErrInvalidCredentials
	}

	return uc.issueToken(account)
}

// GetAccount retrieves an account by id
func (uc *accountUC) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	return uc.accountRepo.GetAccountByID(ctx, accountID)
}

func (uc *accountUC) issueToken(account *models.Account) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(account.ID, account.Email, string(account.Role), uc.cfg)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: time.Unix(expiresAt, 0),
		Account:   account,
	}, nil
}
