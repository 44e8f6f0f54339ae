package repository

import (
	"context"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db}
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	return translate(r.db.WithContext(ctx).Create(message).Error)
}

func (r *MessageRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Preload("HiringManager").
		Preload("Candidate").
		Order("created_at ASC").
		Find(&messages).Error
	return messages, translate(err)
}

// FindByClientToken looks up a previously stored send with the same
// idempotency token, if any.
func (r *MessageRepository) FindByClientToken(ctx context.Context, applicationID uuid.UUID, token string) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).
		First(&message, "application_id = ? AND client_token = ?", applicationID, token).Error
	if err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (r *MessageRepository) LastByApplication(ctx context.Context, applicationID uuid.UUID) (*model.Message, error) {
	var message model.Message
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (r *MessageRepository) CountByApplication(ctx context.Context, applicationID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("application_id = ?", applicationID).
		Count(&count).Error
	return count, translate(err)
}
