package usecase

import (
	"context"

	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSalesUsecase is a mock implementation of usecase.SalesUsecase.
type MockSalesUsecase struct {
	mock.Mock
}

// NewMockSalesUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockSalesUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSalesUsecase {
	m := &MockSalesUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSalesUsecase) Record(ctx context.Context, input *usecase.RecordSalesInput) (*usecase.SalesOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SalesOutput), args.Error(1)
}

func (m *MockSalesUsecase) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*usecase.SalesOutput, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.SalesOutput), args.Error(1)
}

func (m *MockSalesUsecase) Latest(ctx context.Context, businessID uuid.UUID) (*usecase.SalesOutput, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SalesOutput), args.Error(1)
}
