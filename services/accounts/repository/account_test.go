package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/accounts"
)

func setupAccountRepo(t *testing.T) (sqlmock.Sqlmock, *AccountRepository) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewAccountRepository(&models.Config{}, db)

	return mock, repo
}

var accountColumnNames = []string{
	"id", "role", "email", "password_hash", "name", "phone", "created_at", "updated_at",
}

func accountRow(accountID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(accountColumnNames).AddRow(
		accountID, "driver", "driver@example.com", "$2a$10$hash", "Budi Santoso", "+6281234567890", now, now,
	)
}

func TestCreateAccount_Success(t *testing.T) {
	mock, repo := setupAccountRepo(t)

	account := &models.Account{
		ID:           uuid.New(),
		Role:         models.RoleDriver,
		Email:        "driver@example.com",
		PasswordHash: "$2a$10$hash",
		Name:         "Budi Santoso",
		Phone:        "+6281234567890",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs(
			account.ID, account.Role, account.Email, account.PasswordHash,
			account.Name, account.Phone, account.CreatedAt, account.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateAccount(context.Background(), account)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByID_Success(t *testing.T) {
	mock, repo := setupAccountRepo(t)

	accountID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE id = \$1`).
		WithArgs(accountID.String()).
		WillReturnRows(accountRow(accountID))

	account, err := repo.GetAccountByID(context.Background(), accountID.String())
	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, models.RoleDriver, account.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByID_NotFound(t *testing.T) {
	mock, repo := setupAccountRepo(t)

	accountID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE id = \$1`).
		WithArgs(accountID.String()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAccountByID(context.Background(), accountID.String())
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
}

func TestGetAccountByEmail_Success(t *testing.T) {
	mock, repo := setupAccountRepo(t)

	accountID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE email = \$1`).
		WithArgs("driver@example.com").
		WillReturnRows(accountRow(accountID))

	account, err := repo.GetAccountByEmail(context.Background(), "driver@example.com")
	require.NoError(t, err)
	assert.Equal(t, "driver@example.com", account.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
