package handler

import (
	"net/http"

	"VidHub/internal/dto"
	"VidHub/internal/middleware"
	"VidHub/internal/service"
	"VidHub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type VideoHandler interface {
	ListVideos(c *gin.Context)
	GetVideo(c *gin.Context)
	CreateVideo(c *gin.Context)
	UpdateVideo(c *gin.Context)
	DeleteVideo(c *gin.Context)
	LikeVideo(c *gin.Context)
	DislikeVideo(c *gin.Context)
}

type videoHandler struct {
	VideoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) VideoHandler {
	return &videoHandler{VideoService: videoService}
}

type CreateVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Category     string `json:"category"`
	ChannelID    uint64 `json:"channelId"`
}

type UpdateVideoRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Category     *string `json:"category"`
}

// 视频列表：search按标题模糊匹配（不区分大小写），category精确匹配，All或空表示不过滤
func (h *videoHandler) ListVideos(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")
	logCtx := logger.Log.WithFields(logrus.Fields{"search": search, "category": category})

	videos, err := h.VideoService.ListVideos(c.Request.Context(), search, category)
	if err != nil {
		logCtx.WithError(err).Error("获取视频列表失败")
		sendError(c, err)
		return
	}

	logCtx.WithField("count", len(videos)).Debug("成功获取视频列表")
	c.JSON(http.StatusOK, dto.ToVideoResponses(videos))
}

// 观看视频：观看数+1后返回带频道和上传者信息的视频，登录可选
func (h *videoHandler) GetVideo(c *gin.Context) {
	videoID, ok := parseID(c, "id", "Invalid video ID")
	if !ok {
		return
	}
	var viewerID *uint64
	if uid, ok := middleware.UserID(c); ok {
		viewerID = &uid
	}

	video, err := h.VideoService.WatchVideo(c.Request.Context(), videoID, viewerID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Warn("查找视频失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVideoDetailResponse(video))
}

// 创建视频：1、提取Body和context中的userID 2、service层在事务中发布视频 3、将返回的视频结构通过dto传回
func (h *videoHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("发布视频参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	// 蛇形命名法（日志聚合平台ELK、前端JavaScript）
	logCtx := logger.Log.WithFields(logrus.Fields{"user_id": userID, "channel_id": req.ChannelID})
	logCtx.Info("开始处理发布视频请求")

	video, err := h.VideoService.CreateVideo(c.Request.Context(), userID, service.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		ChannelID:    req.ChannelID,
	})
	if err != nil {
		logCtx.WithError(err).Warn("发布视频业务处理失败")
		sendError(c, err)
		return
	}
	// 没有赋值，临时追加上下文，避免污染后续其他日志
	logCtx.WithField("video_id", video.ID).Info("视频发布成功")

	c.JSON(http.StatusCreated, dto.ToVideoResponse(video))
}

func (h *videoHandler) UpdateVideo(c *gin.Context) {
	videoID, ok := parseID(c, "id", "Invalid video ID")
	if !ok {
		return
	}
	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("更新视频参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithFields(logrus.Fields{"user_id": userID, "video_id": videoID})
	logCtx.Info("开始处理更新视频请求")

	video, err := h.VideoService.UpdateVideo(c.Request.Context(), userID, videoID, service.UpdateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
	})
	if err != nil {
		logCtx.WithError(err).Warn("更新视频业务处理失败")
		sendError(c, err)
		return
	}

	logCtx.Info("视频更新成功")
	c.JSON(http.StatusOK, dto.ToVideoResponse(video))
}

func (h *videoHandler) DeleteVideo(c *gin.Context) {
	videoID, ok := parseID(c, "id", "Invalid video ID")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithFields(logrus.Fields{"user_id": userID, "video_id": videoID})
	logCtx.Info("开始处理删除视频请求")

	if err := h.VideoService.DeleteVideo(c.Request.Context(), userID, videoID); err != nil {
		logCtx.WithError(err).Warn("删除视频业务处理失败")
		sendError(c, err)
		return
	}

	logCtx.Info("视频删除成功")
	c.JSON(http.StatusOK, MessageResponse{Message: "Video deleted successfully"})
}

func (h *videoHandler) LikeVideo(c *gin.Context) {
	videoID, ok := parseID(c, "id", "Invalid video ID")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	likes, err := h.VideoService.LikeVideo(c.Request.Context(), userID, videoID)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{"user_id": userID, "video_id": videoID}).Warn("点赞失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LikeResponse{Likes: likes})
}

func (h *videoHandler) DislikeVideo(c *gin.Context) {
	videoID, ok := parseID(c, "id", "Invalid video ID")
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	dislikes, err := h.VideoService.DislikeVideo(c.Request.Context(), userID, videoID)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{"user_id": userID, "video_id": videoID}).Warn("点踩失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DislikeResponse{Dislikes: dislikes})
}
