package usecase

import (
	"context"
	"time"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to append a support message.
type SendMessageInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Text   string    `json:"text" validate:"required"`
	Sender string    `json:"sender" validate:"required,oneof=user agent"`
}

// MessageOutput is the client-facing view of a support message.
type MessageOutput struct {
	ID        int       `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMessageOutput maps a domain Message to its client-facing view.
func NewMessageOutput(message *entity.Message) *MessageOutput {
	if message == nil {
		return nil
	}

	return &MessageOutput{
		ID:        message.ID,
		UserID:    message.UserID,
		Text:      message.Text,
		Sender:    string(message.Sender),
		CreatedAt: message.CreatedAt,
	}
}

// MessageUsecase defines the interface for support conversation operations.
type MessageUsecase interface {
	// Send appends a message to the user's conversation.
	Send(ctx context.Context, input *SendMessageInput) (*MessageOutput, error)

	// History returns the user's messages newest-first. A user with no
	// messages yields an empty slice, never an error.
	History(ctx context.Context, userID uuid.UUID) ([]*MessageOutput, error)
}
