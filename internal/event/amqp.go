package event

import (
	"context"
	"encoding/json"

	"VidHub/pkg/rabbitmq"

	"github.com/streadway/amqp"
)

type AMQPPublisher struct {
	conn  *amqp.Connection
	queue string
}

// NewAMQPPublisher 创建发布者，并确保“vidhub.interaction.queue”这个邮筒存在
func NewAMQPPublisher(conn *amqp.Connection) (*AMQPPublisher, error) {
	if err := rabbitmq.DeclareQueue(conn, QueueInteraction); err != nil {
		return nil, err
	}
	return &AMQPPublisher{conn: conn, queue: QueueInteraction}, nil
}

// Publish 为每一个消息建立一个单独的channel，消息之间互不影响
func (p *AMQPPublisher) Publish(ctx context.Context, evt InteractionEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return ch.Publish(
		"",      // exchange默认交换机
		p.queue, // routing key就是队列名
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    evt.EventID,
			Timestamp:    evt.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent, // 确保消息持久化
		})
}

// Decode 消费者用来解析消息体
func Decode(body []byte) (InteractionEvent, error) {
	var evt InteractionEvent
	err := json.Unmarshal(body, &evt)
	return evt, err
}
