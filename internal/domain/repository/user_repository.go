// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// Absence is a sentinel value here, not a fault; callers decide whether it is an error.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Used both for the duplicate check at signup and for login lookup.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by username. An empty username
	// returns ErrUserNotFound without touching the store.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. The generated ID and CreatedAt are written
	// back onto the entity. Unique-constraint collisions surface as a
	// distinguishable conflict error, never a generic fault.
	Create(ctx context.Context, user *entity.User) error
}
