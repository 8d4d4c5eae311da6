package usecase

import (
	"context"

	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackUsecase is a mock implementation of usecase.FeedbackUsecase.
type MockFeedbackUsecase struct {
	mock.Mock
}

// NewMockFeedbackUsecase creates a mock whose expectations are asserted when the test ends.
func NewMockFeedbackUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedbackUsecase {
	m := &MockFeedbackUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFeedbackUsecase) Submit(ctx context.Context, input *usecase.SubmitFeedbackInput) (*usecase.FeedbackOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.FeedbackOutput), args.Error(1)
}

func (m *MockFeedbackUsecase) History(ctx context.Context, userID uuid.UUID) ([]*usecase.FeedbackOutput, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.FeedbackOutput), args.Error(1)
}
