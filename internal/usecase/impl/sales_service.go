package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "relate/internal/delivery/context"
	"relate/internal/domain/entity"
	"relate/internal/domain/repository"
	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// salesService implements the SalesUsecase interface.
type salesService struct {
	salesRepo repository.SalesRepository
	logger    *slog.Logger
	now       func() time.Time
}

// SalesServiceParams holds dependencies for salesService, injected by Fx.
type SalesServiceParams struct {
	fx.In

	SalesRepo repository.SalesRepository
	Logger    *slog.Logger
}

// NewSalesService is the constructor for salesService.
func NewSalesService(params SalesServiceParams) usecase.SalesUsecase {
	return &salesService{
		salesRepo: params.SalesRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *salesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record stores one sales observation, stamped with the insertion time.
func (srv *salesService) Record(ctx context.Context, input *usecase.RecordSalesInput) (*usecase.SalesOutput, error) {
	record := &entity.SalesRecord{
		BusinessID:    input.BusinessID,
		Date:          srv.now(),
		Revenue:       *input.Revenue,
		Conversions:   *input.Conversions,
		AvgOrderValue: *input.AvgOrderValue,
	}

	if err := srv.salesRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create sales record")
	}

	srv.log(ctx).Debug("Sales record stored", slog.Int("recordID", record.ID), slog.Any("businessID", record.BusinessID))

	return usecase.NewSalesOutput(record), nil
}

// ListByBusiness returns the business's records newest-first by date.
func (srv *salesService) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*usecase.SalesOutput, error) {
	records, err := srv.salesRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales records")
	}

	outputs := make([]*usecase.SalesOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, usecase.NewSalesOutput(record))
	}

	return outputs, nil
}

// Latest returns the most recent record by date. Absence is a value: a
// business with no records yields nil, not an error.
func (srv *salesService) Latest(ctx context.Context, businessID uuid.UUID) (*usecase.SalesOutput, error) {
	record, err := srv.salesRepo.FindLatestByBusiness(ctx, businessID)
	if errors.Is(err, repository.ErrSalesRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest sales record")
	}

	return usecase.NewSalesOutput(record), nil
}
