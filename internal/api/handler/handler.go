package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// Handler 聚合全部 HTTP handler 依赖
type Handler struct {
	tweetSvc   service.TweetService
	feedSvc    service.FeedService
	relSvc     service.RelationshipService
	profileSvc service.ProfileService
	userSvc    service.UserService
	mediaSvc   service.MediaService
}

func New(
	tweetSvc service.TweetService,
	feedSvc service.FeedService,
	relSvc service.RelationshipService,
	profileSvc service.ProfileService,
	userSvc service.UserService,
	mediaSvc service.MediaService,
) *Handler {
	return &Handler{
		tweetSvc:   tweetSvc,
		feedSvc:    feedSvc,
		relSvc:     relSvc,
		profileSvc: profileSvc,
		userSvc:    userSvc,
		mediaSvc:   mediaSvc,
	}
}

// pathID 解析路径里的数字 id，非法时按 404 处理
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.NotFound(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}
