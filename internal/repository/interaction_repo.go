package repository

import (
	"VidHub/internal/model"
	"context"

	"gorm.io/gorm"
)

// InteractionRepository 只给消费者进程用：把互动事件落库做审计
type InteractionRepository interface {
	Create(ctx context.Context, interaction *model.Interaction) error
	ListByVideoID(ctx context.Context, videoID uint64) ([]model.Interaction, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// event_id冲突时返回gorm.ErrDuplicatedKey（需要开启TranslateError）
func (r *interactionRepository) Create(ctx context.Context, interaction *model.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) ListByVideoID(ctx context.Context, videoID uint64) ([]model.Interaction, error) {
	var items []model.Interaction
	err := r.db.WithContext(ctx).Where("video_id = ?", videoID).Order("occurred_at asc, id asc").Find(&items).Error
	return items, err
}
