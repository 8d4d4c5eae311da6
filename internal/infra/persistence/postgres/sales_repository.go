package postgres

import (
	"context"

	"relate/internal/domain/entity"
	domainerrors "relate/internal/domain/errors"
	"relate/internal/domain/repository"
	"relate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// salesRepository implements the repository.SalesRepository interface.
type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository is the constructor for salesRepository.
func NewSalesRepository(db *gorm.DB) repository.SalesRepository {
	return &salesRepository{
		db: db,
	}
}

// ListByBusiness retrieves the business's sales records ordered newest-first by date.
func (repo *salesRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.SalesRecord, error) {
	var salesModels []*model.SalesRecordModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("date DESC").
		Find(&salesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales records by business")
	}

	records := make([]*entity.SalesRecord, 0, len(salesModels))
	for _, salesM := range salesModels {
		records = append(records, toSalesDomain(salesM))
	}

	return records, nil
}

// FindLatestByBusiness retrieves the single most recent record by date.
func (repo *salesRepository) FindLatestByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.SalesRecord, error) {
	var salesM model.SalesRecordModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("date DESC").
		First(&salesM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSalesRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest sales record")
	}

	return toSalesDomain(&salesM), nil
}

// Create persists a new sales record and writes the generated values back.
func (repo *salesRepository) Create(ctx context.Context, record *entity.SalesRecord) error {
	salesM := fromSalesDomain(record)

	if err := repo.db.WithContext(ctx).Create(salesM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sales information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sales record")
	}

	record.ID = salesM.ID
	record.Date = salesM.Date

	return nil
}

// --- Mapper Functions ---

// toSalesDomain converts a GORM SalesRecordModel to a domain SalesRecord entity.
func toSalesDomain(data *model.SalesRecordModel) *entity.SalesRecord {
	if data == nil {
		return nil
	}

	return &entity.SalesRecord{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Date:          data.Date,
		Revenue:       data.Revenue,
		Conversions:   data.Conversions,
		AvgOrderValue: data.AvgOrderValue,
	}
}

// fromSalesDomain converts a domain SalesRecord entity to a GORM SalesRecordModel.
func fromSalesDomain(data *entity.SalesRecord) *model.SalesRecordModel {
	if data == nil {
		return nil
	}

	return &model.SalesRecordModel{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Date:          data.Date,
		Revenue:       data.Revenue,
		Conversions:   data.Conversions,
		AvgOrderValue: data.AvgOrderValue,
	}
}
