package dto

import (
	"VidHub/internal/model"
	"time"
)

type ChannelResponse struct {
	ID            uint64          `json:"id"`
	ChannelName   string          `json:"channelName"`
	Description   string          `json:"description"`
	ChannelBanner string          `json:"channelBanner"`
	Subscribers   uint64          `json:"subscribers"`
	Owner         UserInfo        `json:"owner"`
	Videos        []VideoResponse `json:"videos"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func ToChannelResponse(channel *model.Channel) ChannelResponse {
	resp := ChannelResponse{
		ID:            channel.ID,
		ChannelName:   channel.Name,
		Description:   channel.Description,
		ChannelBanner: channel.Banner,
		Subscribers:   channel.Subscribers,
		Owner:         ToUserInfo(&channel.Owner, channel.OwnerID),
		Videos:        make([]VideoResponse, 0, len(channel.Videos)),
		CreatedAt:     channel.CreatedAt,
		UpdatedAt:     channel.UpdatedAt,
	}
	for i := range channel.Videos {
		v := ToVideoResponse(&channel.Videos[i])
		// 频道页里的视频就属于这个频道，Preload时没有再回查一遍频道
		v.Channel = ChannelInfo{ID: channel.ID, ChannelName: channel.Name, Subscribers: channel.Subscribers}
		resp.Videos = append(resp.Videos, v)
	}
	return resp
}

func ToChannelResponses(channels []model.Channel) []ChannelResponse {
	response := make([]ChannelResponse, 0, len(channels))
	for i := range channels {
		response = append(response, ToChannelResponse(&channels[i]))
	}
	return response
}
