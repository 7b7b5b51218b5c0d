package repository

import (
	"VidHub/internal/model"
	"context"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	// 一个视频下的全部评论，最新的在前
	ListByVideoID(ctx context.Context, videoID uint64) ([]model.Comment, error)
	UpdateText(ctx context.Context, commentID uint64, text string) error
	Delete(ctx context.Context, commentID uint64) error
	// 删除视频时级联删除它的评论，返回删除条数
	DeleteByVideoID(ctx context.Context, videoID uint64) (int64, error)

	WithTx(tx *gorm.DB) CommentRepository
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// WithTx 返回一个新的、使用事务的 commentRepository 实例
func (r *commentRepository) WithTx(tx *gorm.DB) CommentRepository {
	return &commentRepository{
		db: tx,
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Omit("Author").Create(comment).Error
}

// 利用commentID找comment，并顺便将Author给Preload进去
func (r *commentRepository) FindByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var result model.Comment
	err := r.db.WithContext(ctx).Preload("Author").First(&result, commentID).Error
	if err != nil {
		return nil, err // 如果有错（包括没找到），直接返回
	}
	return &result, nil
}

func (r *commentRepository) ListByVideoID(ctx context.Context, videoID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("video_id = ?", videoID).
		// 同一时刻的评论再按id倒序，保证顺序稳定
		Order("created_at desc, id desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateText(ctx context.Context, commentID uint64, text string) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentID).Update("text", text).Error
}

func (r *commentRepository) Delete(ctx context.Context, commentID uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Comment{}, commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) DeleteByVideoID(ctx context.Context, videoID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("video_id = ?", videoID).Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}
