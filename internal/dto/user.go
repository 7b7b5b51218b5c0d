package dto

import (
	"VidHub/internal/model"
	"time"
)

// UserInfo 是在DTO中使用的、简化的用户公开信息
type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// ProfileResponse 是登录用户自己的信息，包含邮箱和频道ID列表
type ProfileResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Channels  []uint64  `json:"channels"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// ToUserInfo 检查User是否被preload，没有就只返回ID
func ToUserInfo(user *model.User, fallbackID uint64) UserInfo {
	if user.ID == 0 {
		return UserInfo{ID: fallbackID}
	}
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
	}
}

func ToProfileResponse(user *model.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Channels:  user.ChannelIDs(),
		CreatedAt: user.CreatedAt,
	}
}
