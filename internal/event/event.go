// Package event 定义观看/点赞/点踩的互动事件，以及把事件投递到RabbitMQ的发布者
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// 遵循：项目名.业务领域.实体/功能
	QueueInteraction = "vidhub.interaction.queue"
)

type Action string

const (
	ActionView    Action = "view"
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
)

// InteractionEvent 定义了我们要在MQ中传递的消息结构
type InteractionEvent struct {
	EventID    string    `json:"event_id"` // 消费者靠它做幂等
	VideoID    uint64    `json:"video_id"`
	UserID     *uint64   `json:"user_id,omitempty"` // 匿名观看时为空
	Action     Action    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewInteraction(videoID uint64, userID *uint64, action Action) InteractionEvent {
	return InteractionEvent{
		EventID:    uuid.NewString(),
		VideoID:    videoID,
		UserID:     userID,
		Action:     action,
		OccurredAt: time.Now(),
	}
}

// Publisher 把已经提交的互动投递出去
type Publisher interface {
	Publish(ctx context.Context, evt InteractionEvent) error
}

// NopPublisher 没有配置RabbitMQ时使用，什么都不做
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, InteractionEvent) error { return nil }
