package repository

import (
	"context"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackRepository defines persistence operations for feedback items.
type FeedbackRepository interface {
	// ListByUser returns the user's feedback items ordered newest-first by
	// creation time. A user with no feedback yields an empty slice.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FeedbackItem, error)

	// Create persists a new feedback item and writes the generated ID,
	// CreatedAt and stored Status back onto the entity.
	Create(ctx context.Context, item *entity.FeedbackItem) error
}
