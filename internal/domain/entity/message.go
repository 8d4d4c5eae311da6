package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of a support conversation wrote a message.
type Sender string

const (
	// SenderUser marks a message written by the account owner.
	SenderUser Sender = "user"

	// SenderAgent marks a message written by a support agent.
	SenderAgent Sender = "agent"
)

// Message is a single entry in a user's support conversation.
// Messages are append-only: there are no edits and no deletes.
type Message struct {
	ID        int       // Sequential identifier assigned by the database.
	UserID    uuid.UUID // Weak reference to the owning User; no cascade is enforced.
	Text      string    // The message body.
	Sender    Sender    // Who wrote the message, "user" or "agent".
	CreatedAt time.Time // Insertion timestamp; history is ordered newest-first on this.
}
