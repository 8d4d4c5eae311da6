package repository

import (
	"context"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSalesRepository is a mock implementation of repository.SalesRepository.
type MockSalesRepository struct {
	mock.Mock
}

// NewMockSalesRepository creates a mock whose expectations are asserted when the test ends.
func NewMockSalesRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSalesRepository {
	m := &MockSalesRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSalesRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.SalesRecord, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SalesRecord), args.Error(1)
}

func (m *MockSalesRepository) FindLatestByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.SalesRecord, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SalesRecord), args.Error(1)
}

func (m *MockSalesRepository) Create(ctx context.Context, record *entity.SalesRecord) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}
