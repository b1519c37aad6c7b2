package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

type createTweetRequest struct {
	TweetData     string `json:"tweet_data" binding:"required,max=280"`
	TweetMediaIDs []uint `json:"tweet_media_ids"`
}

// bindingMessage 把 validator 的报错收敛成一句话
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		switch f.Tag() {
		case "required":
			return "Missing " + f.Field()
		case "max":
			return f.Field() + " exceeds maximum length"
		}
	}
	return err.Error()
}

// CreateTweet 发推
// @Summary 发布推文
// @Tags 推文
// @Accept json
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param request body createTweetRequest true "推文内容与可选附件 id 列表"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /api/tweets [post]
func (h *Handler) CreateTweet(c *gin.Context) {
	var req createTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err))
		return
	}
	user := middleware.CurrentUser(c)
	id, err := h.tweetSvc.Create(c.Request.Context(), user, req.TweetData, req.TweetMediaIDs)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			response.BadRequest(c, "Missing tweet data")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"tweet_id": id})
}

// Feed 拉取自己 + 关注者的推文
// @Summary 拉取 feed
// @Tags 推文
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param limit query int false "每页条数"
// @Param offset query int false "跳过条数"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Router /api/tweets [get]
func (h *Handler) Feed(c *gin.Context) {
	user := middleware.CurrentUser(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	page, err := h.feedSvc.Feed(c.Request.Context(), user, limit, offset)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"tweets": page.Tweets,
		"total":  page.Total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// DeleteTweet 删推（仅作者本人）
// @Summary 删除推文
// @Tags 推文
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param id path int true "推文ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/tweets/{id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.tweetSvc.Delete(c.Request.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, service.ErrTweetNotFound):
			response.NotFound(c, "Tweet not found")
		case errors.Is(err, service.ErrNotTweetAuthor):
			response.Forbidden(c, "You can only delete your own tweets")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, nil)
}

// LikeTweet 点赞，重复点赞为幂等成功
// @Summary 点赞
// @Tags 推文
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param id path int true "推文ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/tweets/{id}/likes [post]
func (h *Handler) LikeTweet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.tweetSvc.Like(c.Request.Context(), user, id); err != nil {
		if errors.Is(err, service.ErrTweetNotFound) {
			response.NotFound(c, "Tweet not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// UnlikeTweet 取消点赞，未点过也算成功
// @Summary 取消点赞
// @Tags 推文
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param id path int true "推文ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Router /api/tweets/{id}/likes [delete]
func (h *Handler) UnlikeTweet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.tweetSvc.Unlike(c.Request.Context(), user, id); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}
