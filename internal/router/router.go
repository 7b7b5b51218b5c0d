package router

import (
	"net/http"

	"VidHub/internal/handler"
	"VidHub/internal/middleware"
	"VidHub/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(jwtSecret string, userHandler handler.UserHandler, channelHandler handler.ChannelHandler, videoHandler handler.VideoHandler, commentHandler handler.CommentHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.WithField("panic", recovered).Error("请求处理发生panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, handler.ErrorResponse{Message: "Server error"})
	}))

	auth := middleware.AuthMiddleware(jwtSecret)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", userHandler.Register)
			authGroup.POST("/login", userHandler.Login)
			authGroup.GET("/profile", auth, userHandler.GetProfile)
		}

		videos := api.Group("/videos")
		{
			videos.GET("", videoHandler.ListVideos)
			// 匿名也能观看，登录用户的观看记录带上用户ID
			videos.GET("/:id", middleware.OptionalAuth(jwtSecret), videoHandler.GetVideo)
			videos.POST("", auth, videoHandler.CreateVideo)
			videos.PUT("/:id", auth, videoHandler.UpdateVideo)
			videos.DELETE("/:id", auth, videoHandler.DeleteVideo)
			videos.POST("/:id/like", auth, videoHandler.LikeVideo)
			videos.POST("/:id/dislike", auth, videoHandler.DislikeVideo)
		}

		channels := api.Group("/channels")
		{
			channels.GET("", channelHandler.ListChannels)
			channels.GET("/owner/:userId", channelHandler.GetChannelByOwner)
			channels.GET("/:id", channelHandler.GetChannel)
			channels.POST("", auth, channelHandler.CreateChannel)
			channels.PUT("/:id", auth, channelHandler.UpdateChannel)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/video/:videoId", commentHandler.GetComments)
			comments.POST("", auth, commentHandler.CreateComment)
			comments.PUT("/:id", auth, commentHandler.UpdateComment)
			comments.DELETE("/:id", auth, commentHandler.DeleteComment)
		}
	}

	return r
}
