package impl

import (
	"context"
	"log/slog"

	deliverycontext "relate/internal/delivery/context"
	"relate/internal/domain/entity"
	"relate/internal/domain/repository"
	"relate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send appends a message to the user's conversation.
func (srv *messageService) Send(ctx context.Context, input *usecase.SendMessageInput) (*usecase.MessageOutput, error) {
	message := &entity.Message{
		UserID: input.UserID,
		Text:   input.Text,
		Sender: entity.Sender(input.Sender),
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	srv.log(ctx).Debug("Message stored", slog.Int("messageID", message.ID), slog.Any("userID", message.UserID))

	return usecase.NewMessageOutput(message), nil
}

// History returns the user's messages newest-first.
func (srv *messageService) History(ctx context.Context, userID uuid.UUID) ([]*usecase.MessageOutput, error) {
	messages, err := srv.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	outputs := make([]*usecase.MessageOutput, 0, len(messages))
	for _, message := range messages {
		outputs = append(outputs, usecase.NewMessageOutput(message))
	}

	return outputs, nil
}
