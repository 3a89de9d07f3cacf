// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ValidateTokenInput carries a bearer token presented for validation.
type ValidateTokenInput struct {
	Token string `json:"token" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the minted token after a successful login.
// Duration is the token lifetime in seconds.
type LoginOutput struct {
	Token    string
	Duration int64
	Account  *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account. All three fields are required; the
	// username must not already be taken.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Authenticate checks a username/password pair and returns the matching
	// account. Read-only; minting a token is Login's job.
	Authenticate(ctx context.Context, username, password string) (*entity.Account, error)

	// Login authenticates and mints a bearer token for the account.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ValidateToken verifies a token and resolves the account it was minted
	// for. A token whose account no longer exists is treated as invalid.
	ValidateToken(ctx context.Context, token string) (*entity.Account, error)

	// GetAccount retrieves a single account by ID.
	GetAccount(ctx context.Context, id int64) (*entity.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
}
