package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// Username carries a partial uniqueness: multiple NULLs are allowed, non-null values are unique.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     *string   `gorm:"type:text;unique"`
	BusinessName *string   `gorm:"type:text"`
	Email        string    `gorm:"type:text;unique;not null"`
	Password     string    `gorm:"type:text;not null"`
	Type         string    `gorm:"type:text;not null"`
	Category     *string   `gorm:"type:text"`
	UniqueCode   *string   `gorm:"type:text"`
	Whatsapp     *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
