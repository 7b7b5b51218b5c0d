package dto

import (
	"VidHub/internal/model"
	"time"
)

// CommentResponse 评论是平铺的，没有二级回复
type CommentResponse struct {
	ID        uint64    `json:"id"`
	VideoID   uint64    `json:"videoId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Author    UserInfo  `json:"author"`
}

func ToCommentResponse(comment *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		Text:      comment.Text,
		Timestamp: comment.CreatedAt,
		Author:    ToUserInfo(&comment.Author, comment.AuthorID),
	}
}

func ToCommentResponses(comments []model.Comment) []CommentResponse {
	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, ToCommentResponse(&comments[i]))
	}
	return response
}
