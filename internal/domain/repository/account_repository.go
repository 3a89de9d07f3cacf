// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateUsername is returned when a create collides with the
	// store's unique constraint on username.
	ErrDuplicateUsername = errors.New("username already taken")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account entity to the storage. The store
	// assigns the ID and timestamps; its unique constraint on username is
	// the authoritative guard against concurrent duplicate registration.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its store-assigned ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByUsername retrieves a single account by its exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// ListAll retrieves every account. An empty store yields an empty slice.
	ListAll(ctx context.Context) ([]*entity.Account, error)
}
