package repository

import (
	"VidHub/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// 三个计数器列名，IncrementCounter只接受这几个
const (
	CounterViews    = "views"
	CounterLikes    = "likes"
	CounterDislikes = "dislikes"
)

// VideoFilter 列表筛选条件：Search对标题做不区分大小写的子串匹配，Category精确匹配，"All"或空表示不过滤
type VideoFilter struct {
	Search   string
	Category model.Category
}

type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	List(ctx context.Context, filter VideoFilter) ([]model.Video, error)
	// 带上所属频道和上传者
	FindByID(ctx context.Context, videoID uint64) (*model.Video, error)
	// 只更新标题、简介、封面、分类
	UpdateDetails(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, videoID uint64) error
	// 原子自增，返回自增后的值；视频不存在返回gorm.ErrRecordNotFound
	IncrementCounter(ctx context.Context, videoID uint64, counter string) (uint64, error)

	GetVideoCache(ctx context.Context, videoID uint64) (*model.Video, error)
	SetVideoCache(ctx context.Context, video *model.Video) error
	DeleteVideoCache(ctx context.Context, videoID uint64) error

	WithTx(tx *gorm.DB) VideoRepository
}

type videoRepository struct {
	db  *gorm.DB
	rdb *redis.Client // 为nil时不走缓存
}

func NewVideoRepository(db *gorm.DB, rdb *redis.Client) VideoRepository {
	return &videoRepository{
		db:  db,
		rdb: rdb,
	}
}

// WithTx 返回一个使用事务的实例；事务里不操作Redis，缓存失效等到提交后再做
func (r *videoRepository) WithTx(tx *gorm.DB) VideoRepository {
	return &videoRepository{
		db: tx,
	}
}

func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Omit("Channel", "Uploader").Create(video).Error
}

// LIKE的转义字符用'!'，MySQL和SQLite写法一致
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// 按上传时间倒序查询视频列表，Preload频道和上传者
func (r *videoRepository) List(ctx context.Context, filter VideoFilter) ([]model.Video, error) {
	var videos []model.Video

	query := r.db.WithContext(ctx).Preload("Channel").Preload("Uploader")
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		query = query.Where("LOWER(title) LIKE ? ESCAPE '!'", pattern)
	}
	if filter.Category != "" && filter.Category != model.CategoryAll {
		query = query.Where("category = ?", filter.Category)
	}
	err := query.Order("upload_date desc, id desc").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// 利用videoID找视频，preload其中的Channel和Uploader结构
func (r *videoRepository) FindByID(ctx context.Context, videoID uint64) (*model.Video, error) {
	var video model.Video
	err := r.db.WithContext(ctx).Preload("Channel").Preload("Uploader").First(&video, videoID).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) UpdateDetails(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", video.ID).
		Updates(map[string]interface{}{
			"title":         video.Title,
			"description":   video.Description,
			"thumbnail_url": video.ThumbnailURL,
			"category":      video.Category,
		}).Error
}

func (r *videoRepository) Delete(ctx context.Context, videoID uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Video{}, videoID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *videoRepository) IncrementCounter(ctx context.Context, videoID uint64, counter string) (uint64, error) {
	switch counter {
	case CounterViews, CounterLikes, CounterDislikes:
	default:
		return 0, fmt.Errorf("unknown counter %q", counter)
	}
	db := r.db.WithContext(ctx)
	// 使用GORM的表达式来执行原子更新：UPDATE `videos` SET `likes` = `likes` + 1 WHERE id = ?
	result := db.Model(&model.Video{}).Where("id = ?", videoID).
		UpdateColumn(counter, gorm.Expr(counter+" + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	var value uint64
	err := db.Model(&model.Video{}).Where("id = ?", videoID).Select(counter).Scan(&value).Error
	return value, err
}

// 返回存储单个视频信息的字符串Key
func (r *videoRepository) keyVideoInfo(videoID uint64) string {
	return fmt.Sprintf("vidhub:video:%d", videoID)
}

// 从Redis缓存中获取单个Video信息：缓存不存在返回(nil, nil)，只有Redis本身出错才返回error
func (r *videoRepository) GetVideoCache(ctx context.Context, videoID uint64) (*model.Video, error) {
	if r.rdb == nil {
		return nil, nil
	}
	videoJSON, err := r.rdb.Get(ctx, r.keyVideoInfo(videoID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var video model.Video
	if err := json.Unmarshal([]byte(videoJSON), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// 将单个视频信息存入Redis缓存，过期时间加上随机性防止缓存雪崩
func (r *videoRepository) SetVideoCache(ctx context.Context, video *model.Video) error {
	if r.rdb == nil {
		return nil
	}
	videoJSON, err := json.Marshal(video)
	if err != nil {
		return err
	}
	expiration := time.Minute*5 + time.Duration(rand.Intn(60))*time.Second
	return r.rdb.Set(ctx, r.keyVideoInfo(video.ID), videoJSON, expiration).Err()
}

func (r *videoRepository) DeleteVideoCache(ctx context.Context, videoID uint64) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(ctx, r.keyVideoInfo(videoID)).Err()
}
