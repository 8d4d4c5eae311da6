package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"relate/internal/domain/entity"
	"relate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesRepository_ListByBusiness(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSalesRepository(gormDB)

	businessID := uuid.New()
	d2 := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "business_id", "date", "revenue", "conversions", "avg_order_value"}).
		AddRow(2, businessID, d2, 200, 4, 50).
		AddRow(1, businessID, d1, 100, 2, 50)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sales_data" WHERE business_id = $1 ORDER BY date DESC`)).
		WithArgs(businessID).
		WillReturnRows(rows)

	records, err := repo.ListByBusiness(context.Background(), businessID)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].ID)
	assert.True(t, records[0].Date.After(records[1].Date))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_FindLatestByBusiness(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSalesRepository(gormDB)

	businessID := uuid.New()
	d2 := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "business_id", "date", "revenue", "conversions", "avg_order_value"}).
		AddRow(2, businessID, d2, 200, 4, 50)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sales_data" WHERE business_id = $1 ORDER BY date DESC`)).
		WithArgs(businessID, 1).
		WillReturnRows(rows)

	record, err := repo.FindLatestByBusiness(context.Background(), businessID)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 2, record.ID)
	assert.Equal(t, d2, record.Date.UTC())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_FindLatestByBusiness_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSalesRepository(gormDB)

	businessID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "sales_data" WHERE business_id = $1 ORDER BY date DESC`)).
		WithArgs(businessID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "date", "revenue", "conversions", "avg_order_value"}))

	record, err := repo.FindLatestByBusiness(context.Background(), businessID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrSalesRecordNotFound))
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_Create_BackfillsGeneratedID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewSalesRepository(gormDB)

	businessID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "sales_data"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	record := &entity.SalesRecord{
		BusinessID:    businessID,
		Date:          time.Now(),
		Revenue:       125000,
		Conversions:   42,
		AvgOrderValue: 2976,
	}

	err := repo.Create(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, 3, record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
