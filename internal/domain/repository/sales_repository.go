package repository

import (
	"context"
	"errors"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSalesRecordNotFound is returned when a business has no sales records.
// The delivery layer maps it to a null payload, not an error response.
var ErrSalesRecordNotFound = errors.New("sales record not found")

// SalesRepository defines persistence operations for sales records.
type SalesRepository interface {
	// ListByBusiness returns the business's records ordered newest-first
	// by observation date.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.SalesRecord, error)

	// FindLatestByBusiness returns the single most recent record by date,
	// or ErrSalesRecordNotFound when none exist.
	FindLatestByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.SalesRecord, error)

	// Create persists a new record and writes the generated ID and stored
	// Date back onto the entity.
	Create(ctx context.Context, record *entity.SalesRecord) error
}
