package usecase

import (
	"context"
	"time"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordSalesInput defines the data required to record one sales observation.
// Monetary values are integers in minor currency units. The metric fields are
// pointers so an omitted field is distinguishable from an explicit zero and
// rejected by validation. The observation date is not client-settable and
// defaults to the insertion time.
type RecordSalesInput struct {
	BusinessID    uuid.UUID `json:"businessId" validate:"required"`
	Revenue       *int      `json:"revenue" validate:"required,min=0"`
	Conversions   *int      `json:"conversions" validate:"required,min=0"`
	AvgOrderValue *int      `json:"avgOrderValue" validate:"required,min=0"`
}

// SalesOutput is the client-facing view of a sales record.
type SalesOutput struct {
	ID            int       `json:"id"`
	BusinessID    uuid.UUID `json:"businessId"`
	Date          time.Time `json:"date"`
	Revenue       int       `json:"revenue"`
	Conversions   int       `json:"conversions"`
	AvgOrderValue int       `json:"avgOrderValue"`
}

// NewSalesOutput maps a domain SalesRecord to its client-facing view.
func NewSalesOutput(record *entity.SalesRecord) *SalesOutput {
	if record == nil {
		return nil
	}

	return &SalesOutput{
		ID:            record.ID,
		BusinessID:    record.BusinessID,
		Date:          record.Date,
		Revenue:       record.Revenue,
		Conversions:   record.Conversions,
		AvgOrderValue: record.AvgOrderValue,
	}
}

// SalesUsecase defines the interface for sales metric operations.
type SalesUsecase interface {
	// Record stores one sales observation for a business.
	Record(ctx context.Context, input *RecordSalesInput) (*SalesOutput, error)

	// ListByBusiness returns the business's records newest-first by date.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*SalesOutput, error)

	// Latest returns the most recent record by date, or nil (not an error)
	// when the business has no records yet.
	Latest(ctx context.Context, businessID uuid.UUID) (*SalesOutput, error)
}
