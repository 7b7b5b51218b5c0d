package rabbitmq

import (
	"github.com/streadway/amqp"
)

// InitRabbitMQ 初始化RabbitMQ连接
func InitRabbitMQ(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// DeclareQueue 声明一个持久化队列，已存在则什么都不做（幂等）
func DeclareQueue(conn *amqp.Connection, name string) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	// 声明完就关闭这个临时的Channel
	defer ch.Close()
	_, err = ch.QueueDeclare(
		name,
		true,  // durable: 服务器重启后队列仍然存在
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}
