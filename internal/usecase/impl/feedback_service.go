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

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for feedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit files a new feedback item. The status is forced to "pending" here;
// whatever the client sent never reaches the store.
func (srv *feedbackService) Submit(ctx context.Context, input *usecase.SubmitFeedbackInput) (*usecase.FeedbackOutput, error) {
	item := &entity.FeedbackItem{
		UserID:  input.UserID,
		Subject: input.Subject,
		Type:    entity.FeedbackType(input.Type),
		Message: input.Message,
		Email:   input.Email,
		Status:  entity.FeedbackStatusPending,
	}

	if err := srv.feedbackRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.log(ctx).Debug("Feedback stored", slog.Int("feedbackID", item.ID), slog.Any("userID", item.UserID))

	return usecase.NewFeedbackOutput(item), nil
}

// History returns the user's feedback newest-first.
func (srv *feedbackService) History(ctx context.Context, userID uuid.UUID) ([]*usecase.FeedbackOutput, error) {
	items, err := srv.feedbackRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	outputs := make([]*usecase.FeedbackOutput, 0, len(items))
	for _, item := range items {
		outputs = append(outputs, usecase.NewFeedbackOutput(item))
	}

	return outputs, nil
}
