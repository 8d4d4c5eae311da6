package usecase

import (
	"context"
	"time"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitFeedbackInput defines the data required to file feedback.
// There is intentionally no status field: the stored status is forced to
// "pending" server-side regardless of what the client sends.
type SubmitFeedbackInput struct {
	UserID  uuid.UUID `json:"userId" validate:"required"`
	Subject string    `json:"subject" validate:"required"`
	Type    string    `json:"type" validate:"required,oneof=complaint suggestion other"`
	Message string    `json:"message" validate:"required"`
	Email   string    `json:"email" validate:"required,email"`
}

// FeedbackOutput is the client-facing view of a feedback item.
type FeedbackOutput struct {
	ID        int       `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Subject   string    `json:"subject"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFeedbackOutput maps a domain FeedbackItem to its client-facing view.
func NewFeedbackOutput(item *entity.FeedbackItem) *FeedbackOutput {
	if item == nil {
		return nil
	}

	return &FeedbackOutput{
		ID:        item.ID,
		UserID:    item.UserID,
		Subject:   item.Subject,
		Type:      string(item.Type),
		Message:   item.Message,
		Email:     item.Email,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}

// FeedbackUsecase defines the interface for feedback operations.
type FeedbackUsecase interface {
	// Submit files a new feedback item with status forced to "pending".
	Submit(ctx context.Context, input *SubmitFeedbackInput) (*FeedbackOutput, error)

	// History returns the user's feedback newest-first. A user with no
	// feedback yields an empty slice, never an error.
	History(ctx context.Context, userID uuid.UUID) ([]*FeedbackOutput, error)
}
