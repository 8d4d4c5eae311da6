package repository

import (
	"context"

	"relate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackRepository is a mock implementation of repository.FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

// NewMockFeedbackRepository creates a mock whose expectations are asserted when the test ends.
func NewMockFeedbackRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedbackRepository {
	m := &MockFeedbackRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFeedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FeedbackItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.FeedbackItem), args.Error(1)
}

func (m *MockFeedbackRepository) Create(ctx context.Context, item *entity.FeedbackItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}
