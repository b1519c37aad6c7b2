package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
)

// NewRouter 组装全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler, authSvc service.AuthService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware("microblog"))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// 无需鉴权
		api.GET("/health", h.Health)
		api.GET("/media/:id", h.GetMedia)
	}

	authed := api.Group("", middleware.Auth(authSvc))
	{
		authed.POST("/tweets", h.CreateTweet)
		authed.GET("/tweets", h.Feed)
		authed.DELETE("/tweets/:id", h.DeleteTweet)
		authed.POST("/tweets/:id/likes", h.LikeTweet)
		authed.DELETE("/tweets/:id/likes", h.UnlikeTweet)

		authed.GET("/users/me", h.Me)
		authed.PUT("/users/me/api-key", h.RotateAPIKey)
		authed.GET("/users/:id", h.GetUser)
		authed.POST("/users/:id/follow", h.FollowUser)
		authed.DELETE("/users/:id/follow", h.UnfollowUser)

		authed.POST("/medias", h.UploadMedia)
	}

	return r
}
