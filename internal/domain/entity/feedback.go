package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackType categorizes a feedback submission.
type FeedbackType string

const (
	FeedbackTypeComplaint  FeedbackType = "complaint"
	FeedbackTypeSuggestion FeedbackType = "suggestion"
	FeedbackTypeOther      FeedbackType = "other"
)

// FeedbackStatus tracks the handling state of a feedback item.
// Clients never set it; every new item starts as "pending".
type FeedbackStatus string

const (
	FeedbackStatusPending FeedbackStatus = "pending"
)

// FeedbackItem is a single feedback submission from a user.
type FeedbackItem struct {
	ID        int            // Sequential identifier assigned by the database.
	UserID    uuid.UUID      // Weak reference to the submitting User.
	Subject   string         // Short summary line.
	Type      FeedbackType   // Category of the submission.
	Message   string         // The feedback body.
	Email     string         // Contact email supplied with the submission.
	Status    FeedbackStatus // Handling state; forced to "pending" at creation.
	CreatedAt time.Time      // Insertion timestamp; history is ordered newest-first on this.
}
