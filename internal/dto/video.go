package dto

import (
	"VidHub/internal/model"
	"time"
)

// ChannelInfo 视频里嵌的频道摘要；单个视频详情时带上简介和横幅
type ChannelInfo struct {
	ID            uint64 `json:"id"`
	ChannelName   string `json:"channelName"`
	Description   string `json:"description,omitempty"`
	ChannelBanner string `json:"channelBanner,omitempty"`
	Subscribers   uint64 `json:"subscribers"`
}

type VideoResponse struct {
	ID           uint64      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	VideoURL     string      `json:"videoUrl"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Category     string      `json:"category"`
	Views        uint64      `json:"views"`
	Likes        uint64      `json:"likes"`
	Dislikes     uint64      `json:"dislikes"`
	UploadDate   time.Time   `json:"uploadDate"`
	Channel      ChannelInfo `json:"channel"`
	Uploader     UserInfo    `json:"uploader"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type LikeResponse struct {
	Likes uint64 `json:"likes"`
}

type DislikeResponse struct {
	Dislikes uint64 `json:"dislikes"`
}

// ToVideoResponse 把DB模型转换为API响应模型，并且正确利用preload返回的数据
func ToVideoResponse(video *model.Video) VideoResponse {
	resp := VideoResponse{
		ID:           video.ID,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Category:     string(video.Category),
		Views:        video.Views,
		Likes:        video.Likes,
		Dislikes:     video.Dislikes,
		UploadDate:   video.UploadDate,
		Channel:      ChannelInfo{ID: video.ChannelID},
		Uploader:     ToUserInfo(&video.Uploader, video.UploaderID),
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
	// 检查Channel是否被成功preload
	if video.Channel.ID != 0 {
		resp.Channel.ChannelName = video.Channel.Name
		resp.Channel.Subscribers = video.Channel.Subscribers
	}
	return resp
}

// ToVideoDetailResponse 单个视频页还需要频道的简介和横幅
func ToVideoDetailResponse(video *model.Video) VideoResponse {
	resp := ToVideoResponse(video)
	if video.Channel.ID != 0 {
		resp.Channel.Description = video.Channel.Description
		resp.Channel.ChannelBanner = video.Channel.Banner
	}
	return resp
}

func ToVideoResponses(videos []model.Video) []VideoResponse {
	// 创建一个有预估容量的切片，空列表也返回[]而不是null
	response := make([]VideoResponse, 0, len(videos))
	for i := range videos {
		response = append(response, ToVideoResponse(&videos[i]))
	}
	return response
}
