package handler

import (
	"net/http"

	"VidHub/internal/dto"
	"VidHub/internal/service"
	"VidHub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CommentHandler interface {
	GetComments(c *gin.Context)
	CreateComment(c *gin.Context)
	UpdateComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type commentHandler struct {
	CommentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) CommentHandler {
	return &commentHandler{CommentService: commentService}
}

type CreateCommentRequest struct {
	VideoID uint64 `json:"videoId"`
	Text    string `json:"text"`
}

type UpdateCommentRequest struct {
	Text string `json:"text"`
}

// 获取视频下的评论，最新的在前
func (h *commentHandler) GetComments(c *gin.Context) {
	videoID, ok := parseID(c, "videoId", "Invalid video ID")
	if !ok {
		return
	}
	comments, err := h.CommentService.ListComments(c.Request.Context(), videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Error("获取评论失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// 发表评论：1、Body中带videoId和text 2、service层确认视频存在后写入 3、返回201
func (h *commentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("发表评论参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithFields(logrus.Fields{"user_id": userID, "video_id": req.VideoID})
	logCtx.Info("开始处理发表评论请求")

	comment, err := h.CommentService.CreateComment(c.Request.Context(), userID, req.VideoID, req.Text)
	if err != nil {
		logCtx.WithError(err).Warn("发表评论业务处理失败")
		sendError(c, err)
		return
	}

	logCtx.WithField("comment_id", comment.ID).Info("评论发表成功")
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *commentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parseID(c, "id", "Invalid comment ID")
	if !ok {
		return
	}
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("更新评论参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithFields(logrus.Fields{"user_id": userID, "comment_id": commentID})

	comment, err := h.CommentService.UpdateComment(c.Request.Context(), userID, commentID, req.Text)
	if err != nil {
		logCtx.WithError(err).Warn("更新评论业务处理失败")
		sendError(c, err)
		return
	}

	logCtx.Info("评论更新成功")
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseID(c, "id", "Invalid comment ID")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithFields(logrus.Fields{"user_id": userID, "comment_id": commentID})

	if err := h.CommentService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		logCtx.WithError(err).Warn("删除评论业务处理失败")
		sendError(c, err)
		return
	}

	logCtx.Info("评论删除成功")
	c.JSON(http.StatusOK, MessageResponse{Message: "Comment deleted successfully"})
}
