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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMessageService(t *testing.T) (usecase.MessageUsecase, *mockRepo.MockMessageRepository) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		Logger:      logger,
	})

	return service, messageRepo
}

func TestMessageService_Send_Success(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	createdAt := time.Now()

	messageRepo.On("Create", ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(args mock.Arguments) {
			message := args.Get(1).(*entity.Message)
			message.ID = 7
			message.CreatedAt = createdAt
		}).
		Return(nil)

	output, err := service.Send(ctx, &usecase.SendMessageInput{
		UserID: userID,
		Text:   "hi",
		Sender: "user",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 7, output.ID)
	assert.Equal(t, userID, output.UserID)
	assert.Equal(t, "hi", output.Text)
	assert.Equal(t, "user", output.Sender)
	assert.Equal(t, createdAt, output.CreatedAt)
}

func TestMessageService_History_NewestFirst(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	stored := []*entity.Message{
		{ID: 2, UserID: userID, Text: "second", Sender: entity.SenderAgent, CreatedAt: now},
		{ID: 1, UserID: userID, Text: "first", Sender: entity.SenderUser, CreatedAt: now.Add(-time.Minute)},
	}

	messageRepo.On("ListByUser", ctx, userID).
		Return(stored, nil)

	outputs, err := service.History(ctx, userID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "second", outputs[0].Text)
	assert.Equal(t, "first", outputs[1].Text)
	assert.False(t, outputs[0].CreatedAt.Before(outputs[1].CreatedAt))
}

func TestMessageService_History_Empty(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()

	messageRepo.On("ListByUser", ctx, userID).
		Return([]*entity.Message{}, nil)

	outputs, err := service.History(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, outputs)
	assert.Empty(t, outputs)
}

func TestMessageService_History_StoreFault(t *testing.T) {
	service, messageRepo := createTestMessageService(t)

	ctx := context.Background()
	userID := uuid.New()

	messageRepo.On("ListByUser", ctx, userID).
		Return(nil, errors.New("connection reset"))

	outputs, err := service.History(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, outputs)
}
