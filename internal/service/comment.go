package service

import (
	"VidHub/internal/model"
	"VidHub/internal/repository"
	"VidHub/pkg/apperr"
	"context"
	"strings"
)

type CommentService interface {
	// 获取一个视频的所有评论，最新的在前
	ListComments(ctx context.Context, videoID uint64) ([]model.Comment, error)
	CreateComment(ctx context.Context, authorID, videoID uint64, text string) (*model.Comment, error)
	UpdateComment(ctx context.Context, callerID, commentID uint64, text string) (*model.Comment, error)
	DeleteComment(ctx context.Context, callerID, commentID uint64) error
}

type commentService struct {
	commentRepo  repository.CommentRepository
	videoService VideoService
}

func NewCommentService(commentRepo repository.CommentRepository, videoService VideoService) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		videoService: videoService,
	}
}

func (s *commentService) ListComments(ctx context.Context, videoID uint64) ([]model.Comment, error) {
	comments, err := s.commentRepo.ListByVideoID(ctx, videoID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return comments, nil
}

// 创建评论：1、校验字段 2、确认视频存在（走缓存） 3、插入评论 4、带着作者信息再查出来
func (s *commentService) CreateComment(ctx context.Context, authorID, videoID uint64, text string) (*model.Comment, error) {
	if videoID == 0 || strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("Video ID and text are required")
	}
	if _, err := s.videoService.FindVideo(ctx, videoID); err != nil {
		return nil, err
	}

	newComment := &model.Comment{
		VideoID:  videoID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, newComment); err != nil {
		return nil, apperr.Internal(err)
	}
	comment, err := s.commentRepo.FindByID(ctx, newComment.ID)
	if err != nil {
		return nil, storageErr(err, "Comment not found")
	}
	return comment, nil
}

// 找到评论并确认调用者是作者
func (s *commentService) findOwned(ctx context.Context, callerID, commentID uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, storageErr(err, "Comment not found")
	}
	if comment.AuthorID != callerID {
		return nil, apperr.Forbidden("You do not own this comment")
	}
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, callerID, commentID uint64, text string) (*model.Comment, error) {
	if _, err := s.findOwned(ctx, callerID, commentID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("Text is required")
	}
	if err := s.commentRepo.UpdateText(ctx, commentID, text); err != nil {
		return nil, apperr.Internal(err)
	}
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, storageErr(err, "Comment not found")
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, callerID, commentID uint64) error {
	if _, err := s.findOwned(ctx, callerID, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return storageErr(err, "Comment not found")
	}
	return nil
}
