package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/accounts"
)

// AccountRepository implements the accounts.AccountRepo interface backed by
// Postgres
type AccountRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *AccountRepository {
	return &AccountRepository{
		cfg: cfg,
		db:  db,
	}
}

// CreateAccount inserts a new account
func (r *AccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (
			id, role, email, password_hash, name, phone, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Role,
		account.Email,
		account.PasswordHash,
		account.Name,
		account.Phone,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

// GetAccountByID retrieves an account by ID
func (r *AccountRepository) GetAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	query := `
		SELECT id, role, email, password_hash, name, phone, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	return r.getAccount(ctx, query, accountID)
}

// GetAccountByEmail retrieves an account by email
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, role, email, password_hash, name, phone, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	return r.getAccount(ctx, query, email)
}

func (r *AccountRepository) getAccount(ctx context.Context, query string, arg interface{}) (*models.Account, error) {
	account := &models.Account{}

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Role,
		&account.Email,
		&account.PasswordHash,
		&account.Name,
		&account.Phone,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}
