package event

import (
	"context"
	"errors"

	"VidHub/internal/model"
	"VidHub/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"gorm.io/gorm"
)

// Recorder 把事件落库，event_id冲突时返回gorm.ErrDuplicatedKey
type Recorder interface {
	Create(ctx context.Context, interaction *model.Interaction) error
}

// Record 把事件转换成审计表的一行
func (e InteractionEvent) Record() *model.Interaction {
	return &model.Interaction{
		EventID:    e.EventID,
		VideoID:    e.VideoID,
		UserID:     e.UserID,
		Action:     string(e.Action),
		OccurredAt: e.OccurredAt,
	}
}

// Consume 在ch上注册消费者，持续处理消息直到ctx取消
func Consume(ctx context.Context, ch *amqp.Channel, recorder Recorder) error {
	msgs, err := ch.Consume(
		QueueInteraction, // queue
		"",               // consumer
		false,            // auto-ack: 手动确认，落库成功才Ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // args
	)
	if err != nil {
		return err
	}
	logger.Log.Info(" [*] 等待互动事件中. 按 CTRL+C 退出")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			// msgs不是切片，而是通道channel，连接断开时会被关闭
			if !ok {
				return errors.New("delivery channel closed")
			}
			HandleDelivery(ctx, d, recorder)
		}
	}
}

// HandleDelivery 处理一条消息：解析失败直接丢弃，重复事件当作成功，其他错误重新入队
func HandleDelivery(ctx context.Context, d amqp.Delivery, recorder Recorder) {
	logCtx := logger.Log.WithFields(logrus.Fields{"message_id": d.MessageId, "redelivered": d.Redelivered})

	evt, err := Decode(d.Body)
	if err != nil {
		logCtx.WithError(err).Error("消息JSON解析失败")
		// 对于无法解析的“坏消息”，应该通知mq处理失败，并直接删除
		_ = d.Nack(false, false)
		return
	}
	logCtx = logCtx.WithFields(logrus.Fields{"video_id": evt.VideoID, "action": evt.Action})

	err = recorder.Create(ctx, evt.Record())
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		logCtx.WithError(err).Warn("处理消息时出现重复键错误，可能是一次重复消费，消息将被确认为成功。")
		// 这不是一个需要重试的错误，直接Ack掉
		_ = d.Ack(false)
	default:
		// 其他类型错误，才要求重试
		logCtx.WithError(err).Error("处理消息失败，将进行重试")
		_ = d.Nack(false, true)
	}
}
