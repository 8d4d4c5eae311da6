package postgres

import (
	"context"

	"relate/internal/domain/entity"
	domainerrors "relate/internal/domain/errors"
	"relate/internal/domain/repository"
	"relate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// ListByUser retrieves the user's feedback items ordered newest-first.
func (repo *feedbackRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FeedbackItem, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback by user")
	}

	items := make([]*entity.FeedbackItem, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		items = append(items, toFeedbackDomain(feedbackM))
	}

	return items, nil
}

// Create persists a new feedback item and writes the generated values back.
// The caller is expected to have forced Status already; the column default
// covers any path that did not.
func (repo *feedbackRepository) Create(ctx context.Context, item *entity.FeedbackItem) error {
	feedbackM := fromFeedbackDomain(item)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	item.ID = feedbackM.ID
	item.Status = entity.FeedbackStatus(feedbackM.Status)
	item.CreatedAt = feedbackM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toFeedbackDomain converts a GORM FeedbackModel to a domain FeedbackItem entity.
func toFeedbackDomain(data *model.FeedbackModel) *entity.FeedbackItem {
	if data == nil {
		return nil
	}

	return &entity.FeedbackItem{
		ID:        data.ID,
		UserID:    data.UserID,
		Subject:   data.Subject,
		Type:      entity.FeedbackType(data.Type),
		Message:   data.Message,
		Email:     data.Email,
		Status:    entity.FeedbackStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}

// fromFeedbackDomain converts a domain FeedbackItem entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.FeedbackItem) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Subject:   data.Subject,
		Type:      string(data.Type),
		Message:   data.Message,
		Email:     data.Email,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
	}
}
