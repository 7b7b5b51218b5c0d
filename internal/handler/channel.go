package handler

import (
	"net/http"

	"VidHub/internal/dto"
	"VidHub/internal/service"
	"VidHub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ChannelHandler interface {
	ListChannels(c *gin.Context)
	GetChannel(c *gin.Context)
	GetChannelByOwner(c *gin.Context)
	CreateChannel(c *gin.Context)
	UpdateChannel(c *gin.Context)
}

type channelHandler struct {
	ChannelService service.ChannelService
}

func NewChannelHandler(channelService service.ChannelService) ChannelHandler {
	return &channelHandler{ChannelService: channelService}
}

type CreateChannelRequest struct {
	ChannelName   string `json:"channelName"`
	Description   string `json:"description"`
	ChannelBanner string `json:"channelBanner"`
}

// 指针字段：没传的不修改
type UpdateChannelRequest struct {
	ChannelName   *string `json:"channelName"`
	Description   *string `json:"description"`
	ChannelBanner *string `json:"channelBanner"`
}

func (h *channelHandler) ListChannels(c *gin.Context) {
	channels, err := h.ChannelService.ListChannels(c.Request.Context())
	if err != nil {
		logger.Log.WithError(err).Error("获取频道列表失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelResponses(channels))
}

func (h *channelHandler) GetChannel(c *gin.Context) {
	channelID, ok := parseID(c, "id", "Invalid channel ID")
	if !ok {
		return
	}
	channel, err := h.ChannelService.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		logger.Log.WithError(err).WithField("channel_id", channelID).Warn("查找频道失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelResponse(channel))
}

func (h *channelHandler) GetChannelByOwner(c *gin.Context) {
	ownerID, ok := parseID(c, "userId", "Invalid user ID")
	if !ok {
		return
	}
	channel, err := h.ChannelService.GetChannelByOwner(c.Request.Context(), ownerID)
	if err != nil {
		logger.Log.WithError(err).WithField("owner_id", ownerID).Warn("按拥有者查找频道失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToChannelResponse(channel))
}

// 创建频道：1、解析Body 2、service层在事务中写入频道（每个用户只能有一个） 3、返回201
func (h *channelHandler) CreateChannel(c *gin.Context) {
	var req CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("创建频道参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("user_id", userID)
	logCtx.Info("开始处理创建频道请求")

	channel, err := h.ChannelService.CreateChannel(c.Request.Context(), userID, service.CreateChannelInput{
		Name:        req.ChannelName,
		Description: req.Description,
		Banner:      req.ChannelBanner,
	})
	if err != nil {
		logCtx.WithError(err).Warn("创建频道业务处理失败")
		sendError(c, err)
		return
	}

	logCtx.WithField("channel_id", channel.ID).Info("频道创建成功")
	c.JSON(http.StatusCreated, dto.ToChannelResponse(channel))
}

func (h *channelHandler) UpdateChannel(c *gin.Context) {
	channelID, ok := parseID(c, "id", "Invalid channel ID")
	if !ok {
		return
	}
	var req UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("更新频道参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithFields(logrus.Fields{"user_id": userID, "channel_id": channelID})
	logCtx.Info("开始处理更新频道请求")

	channel, err := h.ChannelService.UpdateChannel(c.Request.Context(), userID, channelID, service.UpdateChannelInput{
		Name:        req.ChannelName,
		Description: req.Description,
		Banner:      req.ChannelBanner,
	})
	if err != nil {
		logCtx.WithError(err).Warn("更新频道业务处理失败")
		sendError(c, err)
		return
	}

	logCtx.Info("频道更新成功")
	c.JSON(http.StatusOK, dto.ToChannelResponse(channel))
}
