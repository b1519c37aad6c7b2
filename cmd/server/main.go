package main

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/config"
	_ "github.com/d60-Lab/microblog/docs"
	"github.com/d60-Lab/microblog/internal/api"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/cache"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/internal/testdata"
	"github.com/d60-Lab/microblog/pkg/database"
	"github.com/d60-Lab/microblog/pkg/logger"
	"github.com/d60-Lab/microblog/pkg/tracing"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// @title Microblog API
// @version 1.0
// @description 极简微博后端：推文、关注、点赞、媒体上传
// @BasePath /
func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Fatal("sentry init", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}
	if cfg.Tracing.Enabled {
		shutdown := must(tracing.Init(context.Background(), cfg))
		defer func() { _ = shutdown(context.Background()) }()
	}

	db := must(database.InitDB(cfg))
	if cfg.Seed {
		if err := testdata.Seed(db); err != nil {
			logger.Fatal("seed test data", zap.Error(err))
		}
	}
	if err := testdata.Bootstrap(db); err != nil {
		logger.Fatal("bootstrap user", zap.Error(err))
	}

	var relCache *cache.RelationCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		relCache = cache.NewRelationCache(rdb, cfg.Redis.TTL)
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	authSvc := service.NewAuthService(userRepo)
	relSvc := service.NewRelationshipService(followRepo, userRepo, relCache)
	tweetSvc := service.NewTweetService(tweetRepo, mediaRepo, likeRepo)
	feedSvc := service.NewFeedService(tweetRepo, followRepo, cfg.Feed.DefaultLimit, cfg.Feed.MaxLimit)
	profileSvc := service.NewProfileService(userRepo, followRepo, relCache)
	userSvc := service.NewUserService(userRepo)
	mediaSvc := service.NewMediaService(mediaRepo, cfg.Media.UploadDir, cfg.Media.MaxSize)

	h := handler.New(tweetSvc, feedSvc, relSvc, profileSvc, userSvc, mediaSvc)
	r := api.NewRouter(cfg, h, authSvc)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
