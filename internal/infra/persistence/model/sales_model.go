package model

import (
	"time"

	"github.com/google/uuid"
)

// SalesRecordModel mirrors the 'sales_data' table. Monetary columns are
// integers in minor currency units; date carries the observation time and
// defaults to the insertion time.
type SalesRecordModel struct {
	ID            int       `gorm:"primaryKey"`
	BusinessID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Date          time.Time `gorm:"not null"`
	Revenue       int       `gorm:"not null"`
	Conversions   int       `gorm:"not null"`
	AvgOrderValue int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SalesRecordModel) TableName() string {
	return "sales_data"
}
