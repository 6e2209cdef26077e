package models

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two parties transacting through the marketplace
type Role string

const (
	RoleDealer Role = "dealer"
	RoleDriver Role = "driver"
)

// Account represents a dealer or driver user
type Account struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Role         Role      `json:"role" db:"role"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the account creation payload
type RegisterRequest struct {
	Role     Role   `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// LoginRequest is the credential payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and its expiry
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Account   *Account  `json:"account"`
}
