package repository

import (
	"context"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository defines persistence operations for support messages.
// Messages are append-only; there is no update or delete.
type MessageRepository interface {
	// ListByUser returns the user's messages ordered newest-first by
	// creation time. A user with no messages yields an empty slice.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Message, error)

	// Create persists a new message and writes the generated ID and
	// CreatedAt back onto the entity.
	Create(ctx context.Context, message *entity.Message) error
}
