package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"relate/internal/domain/entity"
	mockRepo "relate/internal/mocks/repository"
	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedbackService(t *testing.T) (usecase.FeedbackUsecase, *mockRepo.MockFeedbackRepository) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFeedbackService(FeedbackServiceParams{
		FeedbackRepo: feedbackRepo,
		Logger:       logger,
	})

	return service, feedbackRepo
}

func TestFeedbackService_Submit_ForcesPendingStatus(t *testing.T) {
	service, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	userID := uuid.New()

	feedbackRepo.On("Create", ctx, mock.AnythingOfType("*entity.FeedbackItem")).
		Run(func(args mock.Arguments) {
			item := args.Get(1).(*entity.FeedbackItem)
			// The entity handed to the store must already carry the
			// forced status, whatever the client sent.
			assert.Equal(t, entity.FeedbackStatusPending, item.Status)
			item.ID = 3
			item.CreatedAt = time.Now()
		}).
		Return(nil)

	output, err := service.Submit(ctx, &usecase.SubmitFeedbackInput{
		UserID:  userID,
		Subject: "broken checkout",
		Type:    "complaint",
		Message: "cart empties itself",
		Email:   "a@x.com",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 3, output.ID)
	assert.Equal(t, "pending", output.Status)
	assert.Equal(t, "complaint", output.Type)
}

func TestFeedbackService_History_NewestFirst(t *testing.T) {
	service, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	stored := []*entity.FeedbackItem{
		{ID: 2, UserID: userID, Subject: "later", Type: entity.FeedbackTypeOther, Status: entity.FeedbackStatusPending, CreatedAt: now},
		{ID: 1, UserID: userID, Subject: "earlier", Type: entity.FeedbackTypeSuggestion, Status: entity.FeedbackStatusPending, CreatedAt: now.Add(-time.Hour)},
	}

	feedbackRepo.On("ListByUser", ctx, userID).
		Return(stored, nil)

	outputs, err := service.History(ctx, userID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "later", outputs[0].Subject)
	assert.Equal(t, "earlier", outputs[1].Subject)
}
