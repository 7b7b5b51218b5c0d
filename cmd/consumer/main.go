package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"VidHub/internal/event"
	"VidHub/internal/model"
	"VidHub/internal/repository"
	"VidHub/pkg/config"
	"VidHub/pkg/database"
	"VidHub/pkg/logger"
	"VidHub/pkg/rabbitmq"
)

// 消费者进程：连接mysql，rabbitMQ，把互动事件（观看/点赞/点踩）写入interactions表做审计
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if err := logger.InitLogger(cfg.Log.File, cfg.Log.Level); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	if cfg.RabbitMQ.URL == "" {
		logger.Log.Fatal("未配置RABBITMQ_URL，消费者无事可做")
	}

	// 连接数据库
	db, err := database.OpenMySQL(cfg.MySQL.DSN())
	if err != nil {
		logger.Log.Fatalf("消费者无法连接到数据库: %v", err)
	}
	if err := db.AutoMigrate(&model.Interaction{}); err != nil {
		logger.Log.Fatalf("数据库迁移失败: %v", err)
	}
	// 连接RabbitMQ
	conn, err := rabbitmq.InitRabbitMQ(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Log.Fatalf("消费者无法连接到RabbitMQ: %v", err)
	}
	defer conn.Close()
	if err := rabbitmq.DeclareQueue(conn, event.QueueInteraction); err != nil {
		logger.Log.Fatalf("无法声明互动事件队列: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ch, err := conn.Channel()
	if err != nil {
		logger.Log.Fatalf("无法打开Channel: %v", err)
	}
	defer ch.Close()

	if err := event.Consume(ctx, ch, repository.NewInteractionRepository(db)); err != nil {
		logger.Log.Fatalf("互动事件消费失败: %v", err)
	}
	logger.Log.Info("消费者已退出")
}
