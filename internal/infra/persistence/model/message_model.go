package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table. IDs are a PostgreSQL serial;
// user_id is a weak reference to users.id with no cascade.
type MessageModel struct {
	ID        int       `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Text      string    `gorm:"type:text;not null"`
	Sender    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
