package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback' table. Status carries a database
// default of "pending"; the application also forces it at creation so the
// stored value never comes from client input.
type FeedbackModel struct {
	ID        int       `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Subject   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:text;not null"`
	Message   string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null;default:pending"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
