package repository

import (
	"VidHub/internal/model"
	"context"

	"gorm.io/gorm"
)

type ChannelRepository interface {
	Create(ctx context.Context, channel *model.Channel) error
	// 只查频道本身，用于权限判断
	FindByID(ctx context.Context, channelID uint64) (*model.Channel, error)
	FindByOwnerID(ctx context.Context, ownerID uint64) (*model.Channel, error)
	// 带上拥有者和视频列表（视频再带上传者），用于展示
	FindDetailByID(ctx context.Context, channelID uint64) (*model.Channel, error)
	FindDetailByOwnerID(ctx context.Context, ownerID uint64) (*model.Channel, error)
	FindAll(ctx context.Context) ([]model.Channel, error)
	// 只更新名称、简介、横幅三个可变字段
	UpdateProfile(ctx context.Context, channel *model.Channel) error

	WithTx(tx *gorm.DB) ChannelRepository
}

type channelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) WithTx(tx *gorm.DB) ChannelRepository {
	return &channelRepository{db: tx}
}

func (r *channelRepository) Create(ctx context.Context, channel *model.Channel) error {
	return r.db.WithContext(ctx).Omit("Owner", "Videos").Create(channel).Error
}

func (r *channelRepository) FindByID(ctx context.Context, channelID uint64) (*model.Channel, error) {
	var result model.Channel
	if err := r.db.WithContext(ctx).First(&result, channelID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *channelRepository) FindByOwnerID(ctx context.Context, ownerID uint64) (*model.Channel, error) {
	var result model.Channel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// 频道页需要的全部关联：拥有者、视频（按上传时间倒序）、视频的上传者
func (r *channelRepository) detail(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("upload_date desc, id desc")
		}).
		Preload("Videos.Uploader")
}

func (r *channelRepository) FindDetailByID(ctx context.Context, channelID uint64) (*model.Channel, error) {
	var result model.Channel
	if err := r.detail(ctx).First(&result, channelID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *channelRepository) FindDetailByOwnerID(ctx context.Context, ownerID uint64) (*model.Channel, error) {
	var result model.Channel
	if err := r.detail(ctx).Where("owner_id = ?", ownerID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *channelRepository) FindAll(ctx context.Context) ([]model.Channel, error) {
	var channels []model.Channel
	err := r.detail(ctx).Order("id asc").Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *channelRepository) UpdateProfile(ctx context.Context, channel *model.Channel) error {
	// 用map更新，空字符串（清空）也会被写进去；struct更新会跳过零值
	return r.db.WithContext(ctx).Model(&model.Channel{}).Where("id = ?", channel.ID).
		Updates(map[string]interface{}{
			"name":        channel.Name,
			"description": channel.Description,
			"banner":      channel.Banner,
		}).Error
}
