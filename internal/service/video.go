package service

import (
	"VidHub/internal/data"
	"VidHub/internal/event"
	"VidHub/internal/model"
	"VidHub/internal/repository"
	"VidHub/pkg/apperr"
	"VidHub/pkg/logger"
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

type CreateVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	Category     string
	ChannelID    uint64
}

// UpdateVideoInput 中nil表示不修改；播放地址和所属频道创建后不可改
type UpdateVideoInput struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
	Category     *string
}

type VideoService interface {
	ListVideos(ctx context.Context, search, category string) ([]model.Video, error)
	// 观看视频：每次调用观看数+1，viewerID为nil表示匿名
	WatchVideo(ctx context.Context, videoID uint64, viewerID *uint64) (*model.Video, error)
	// 只读查找，不计观看，先走缓存
	FindVideo(ctx context.Context, videoID uint64) (*model.Video, error)
	CreateVideo(ctx context.Context, callerID uint64, in CreateVideoInput) (*model.Video, error)
	UpdateVideo(ctx context.Context, callerID, videoID uint64, in UpdateVideoInput) (*model.Video, error)
	DeleteVideo(ctx context.Context, callerID, videoID uint64) error
	LikeVideo(ctx context.Context, callerID, videoID uint64) (uint64, error)
	DislikeVideo(ctx context.Context, callerID, videoID uint64) (uint64, error)
}

type videoService struct {
	sf singleflight.Group

	videoRepo repository.VideoRepository
	uow       data.UnitOfWork
	publisher event.Publisher
}

func NewVideoService(videoRepo repository.VideoRepository, uow data.UnitOfWork, publisher event.Publisher) VideoService {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &videoService{
		videoRepo: videoRepo,
		uow:       uow,
		publisher: publisher,
	}
}

func parseCategory(raw string) (model.Category, error) {
	if raw == "" {
		return model.CategoryAll, nil
	}
	c := model.Category(raw)
	if !c.Valid() {
		return "", apperr.Validation("Invalid category")
	}
	return c, nil
}

func (s *videoService) ListVideos(ctx context.Context, search, category string) ([]model.Video, error) {
	videos, err := s.videoRepo.List(ctx, repository.VideoFilter{
		Search:   search,
		Category: model.Category(category),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return videos, nil
}

// 观看视频：1、原子地给views+1（视频不存在就是404） 2、作废缓存 3、从数据库读出最新数据 4、投递观看事件
// 不做观看者去重，同一个人（包括上传者自己）每看一次都算
// 这里不回写缓存：读库和写缓存之间可能有别的计数+1，回写会把旧计数缓存下来
func (s *videoService) WatchVideo(ctx context.Context, videoID uint64, viewerID *uint64) (*model.Video, error) {
	if _, err := s.videoRepo.IncrementCounter(ctx, videoID, repository.CounterViews); err != nil {
		return nil, storageErr(err, "Video not found")
	}
	s.invalidate(ctx, videoID)

	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, storageErr(err, "Video not found")
	}

	s.publish(ctx, event.NewInteraction(videoID, viewerID, event.ActionView))
	return video, nil
}

// 根据videoID查找视频：1、查找Redis缓存 2、通过SingleFlight进行数据库查找，同一时间同一个视频只打一次数据库
func (s *videoService) FindVideo(ctx context.Context, videoID uint64) (*model.Video, error) {
	video, err := s.videoRepo.GetVideoCache(ctx, videoID)
	if err == nil && video != nil {
		return video, nil
	}
	// Redis本身出错了，记录日志后降级到数据库
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Warn("读取视频缓存失败")
	}

	key := fmt.Sprintf("find_video_%d", videoID)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		dbVideo, dbErr := s.videoRepo.FindByID(ctx, videoID)
		if dbErr != nil {
			return nil, dbErr
		}
		// 查询成功后，将返回的dbVideo写回缓存！
		if cacheErr := s.videoRepo.SetVideoCache(ctx, dbVideo); cacheErr != nil {
			logger.Log.WithError(cacheErr).WithField("video_id", videoID).Warn("写入视频缓存失败")
		}
		return dbVideo, nil
	})
	if err != nil {
		return nil, storageErr(err, "Video not found")
	}
	// 返回值是interface{}结构，需要断言
	return result.(*model.Video), nil
}

// 发布视频：1、校验必填字段和分类 2、事务内确认频道存在且调用者是频道拥有者 3、插入视频
// 视频通过channel_id挂到频道下，频道的视频列表和视频本身在同一个事务里生效
func (s *videoService) CreateVideo(ctx context.Context, callerID uint64, in CreateVideoInput) (*model.Video, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.VideoURL == "" || in.ThumbnailURL == "" || in.ChannelID == 0 {
		return nil, apperr.Validation("Required fields are missing")
	}
	category, err := parseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	video := &model.Video{
		Title:        title,
		Description:  in.Description,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		ChannelID:    in.ChannelID,
		UploaderID:   callerID,
		Category:     category,
		UploadDate:   time.Now(),
	}
	err = s.uow.Execute(ctx, func(repos *data.TransactionalRepositories) error {
		channel, err := repos.ChannelRepo.FindByID(ctx, in.ChannelID)
		if err != nil {
			return storageErr(err, "Channel not found")
		}
		if channel.OwnerID != callerID {
			return apperr.Forbidden("You do not own this channel")
		}
		return repos.VideoRepo.Create(ctx, video)
	})
	if err != nil {
		return nil, storageErr(err, "Channel not found")
	}

	created, err := s.videoRepo.FindByID(ctx, video.ID)
	if err != nil {
		return nil, storageErr(err, "Video not found")
	}
	return created, nil
}

// 更新视频：只有上传者能改；标题和封面不能被清空
func (s *videoService) UpdateVideo(ctx context.Context, callerID, videoID uint64, in UpdateVideoInput) (*model.Video, error) {
	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, storageErr(err, "Video not found")
	}
	if video.UploaderID != callerID {
		return nil, apperr.Forbidden("You do not own this video")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Validation("Title is required")
		}
		video.Title = title
	}
	if in.Description != nil {
		video.Description = *in.Description
	}
	if in.ThumbnailURL != nil {
		if *in.ThumbnailURL == "" {
			return nil, apperr.Validation("Thumbnail URL is required")
		}
		video.ThumbnailURL = *in.ThumbnailURL
	}
	if in.Category != nil {
		category, err := parseCategory(*in.Category)
		if err != nil {
			return nil, err
		}
		video.Category = category
	}

	if err := s.videoRepo.UpdateDetails(ctx, video); err != nil {
		return nil, apperr.Internal(err)
	}
	s.invalidate(ctx, videoID)

	updated, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, storageErr(err, "Video not found")
	}
	return updated, nil
}

// 删除视频：只有上传者能删。视频、它在频道下的挂载关系、它的评论在同一个事务里一起删掉
func (s *videoService) DeleteVideo(ctx context.Context, callerID, videoID uint64) error {
	err := s.uow.Execute(ctx, func(repos *data.TransactionalRepositories) error {
		video, err := repos.VideoRepo.FindByID(ctx, videoID)
		if err != nil {
			return storageErr(err, "Video not found")
		}
		if video.UploaderID != callerID {
			return apperr.Forbidden("You do not own this video")
		}
		removed, err := repos.CommentRepo.DeleteByVideoID(ctx, videoID)
		if err != nil {
			return err
		}
		if err := repos.VideoRepo.Delete(ctx, videoID); err != nil {
			return err
		}
		logger.Log.WithField("video_id", videoID).WithField("comments_removed", removed).Debug("视频及其评论已删除")
		return nil
	})
	if err != nil {
		return storageErr(err, "Video not found")
	}
	s.invalidate(ctx, videoID)
	return nil
}

// 点赞：任何登录用户都可以，不记录谁点过，点几次加几次
func (s *videoService) LikeVideo(ctx context.Context, callerID, videoID uint64) (uint64, error) {
	return s.bump(ctx, callerID, videoID, repository.CounterLikes, event.ActionLike)
}

func (s *videoService) DislikeVideo(ctx context.Context, callerID, videoID uint64) (uint64, error) {
	return s.bump(ctx, callerID, videoID, repository.CounterDislikes, event.ActionDislike)
}

func (s *videoService) bump(ctx context.Context, callerID, videoID uint64, counter string, action event.Action) (uint64, error) {
	n, err := s.videoRepo.IncrementCounter(ctx, videoID, counter)
	if err != nil {
		return 0, storageErr(err, "Video not found")
	}
	s.invalidate(ctx, videoID)
	s.publish(ctx, event.NewInteraction(videoID, &callerID, action))
	return n, nil
}

// 缓存失效失败不影响请求，最多读到5分钟内的旧数据
func (s *videoService) invalidate(ctx context.Context, videoID uint64) {
	if err := s.videoRepo.DeleteVideoCache(ctx, videoID); err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Warn("删除视频缓存失败")
	}
}

// 计数已经提交，事件投递失败只记日志
func (s *videoService) publish(ctx context.Context, evt event.InteractionEvent) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.Log.WithError(err).
			WithField("video_id", evt.VideoID).
			WithField("action", evt.Action).
			Error("互动事件投递失败")
	}
}
