package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"VidHub/internal/data"
	"VidHub/internal/event"
	"VidHub/internal/handler"
	"VidHub/internal/model"
	"VidHub/internal/repository"
	"VidHub/internal/router"
	"VidHub/internal/service"
	"VidHub/pkg/config"
	"VidHub/pkg/database"
	"VidHub/pkg/logger"
	"VidHub/pkg/rabbitmq"
	"VidHub/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
)

func main() {
	// 加载.env文件和环境变量
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	// 初始化logger
	if err := logger.InitLogger(cfg.Log.File, cfg.Log.Level); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 数据库是唯一的硬依赖，连不上直接退出
	db, err := database.OpenMySQL(cfg.MySQL.DSN())
	if err != nil {
		logger.Log.Fatalf("无法连接到数据库: %v", err)
	}
	logger.Log.Info("数据库连接成功")
	// db.AutoMigrate(),没有这个表就创建,没有属性列则创建列,没有约束则增加约束;不会主动删除和修改
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		logger.Log.Fatalf("数据库迁移失败: %v", err)
	}
	logger.Log.Info("数据库迁移成功")

	// Redis可选：没配置或连不上就不走缓存
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Log.WithError(err).Warn("无法连接到Redis，视频缓存已关闭")
		} else {
			defer redisClient.Close()
			logger.Log.Info("Redis连接成功")
		}
	}

	// RabbitMQ可选：没配置或连不上就不投递互动事件
	var publisher event.Publisher = event.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.InitRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Log.WithError(err).Warn("无法连接到RabbitMQ，互动事件不会投递")
		} else {
			defer conn.Close() // 确保程序退出时关闭连接
			amqpPublisher, err := event.NewAMQPPublisher(conn)
			if err != nil {
				logger.Log.WithError(err).Warn("互动事件队列声明失败，互动事件不会投递")
			} else {
				publisher = amqpPublisher
				logger.Log.Info("RabbitMQ连接成功")
			}
		}
	}

	userRepo := repository.NewUserRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	videoRepo := repository.NewVideoRepository(db, redisClient)
	commentRepo := repository.NewCommentRepository(db)

	uow := data.NewUnitOfWork(db, userRepo, channelRepo, videoRepo, commentRepo)

	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.JWTExpire)
	channelService := service.NewChannelService(channelRepo, uow)
	videoService := service.NewVideoService(videoRepo, uow, publisher)
	commentService := service.NewCommentService(commentRepo, videoService)

	userHandler := handler.NewUserHandler(userService)
	channelHandler := handler.NewChannelHandler(channelService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)

	r := router.SetupRouter(cfg.JWTSecret, userHandler, channelHandler, videoHandler, commentHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Infof("服务器将在: %s端口启动", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("收到退出信号，开始优雅关闭")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("服务器关闭失败")
		return
	}
	logger.Log.Info("服务器已关闭")
}
