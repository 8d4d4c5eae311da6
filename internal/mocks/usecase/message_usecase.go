package usecase

import (
	"context"

	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMessageUsecase is a mock implementation of usecase.MessageUsecase.
type MockMessageUsecase struct {
	mock.Mock
}

// NewMockMessageUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockMessageUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageUsecase {
	m := &MockMessageUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageUsecase) Send(ctx context.Context, input *usecase.SendMessageInput) (*usecase.MessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.MessageOutput), args.Error(1)
}

func (m *MockMessageUsecase) History(ctx context.Context, userID uuid.UUID) ([]*usecase.MessageOutput, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.MessageOutput), args.Error(1)
}
