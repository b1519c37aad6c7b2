package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// FollowUser 关注，重复关注为幂等成功
// @Summary 关注用户
// @Tags 用户
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param id path int true "被关注用户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/users/{id}/follow [post]
func (h *Handler) FollowUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.relSvc.Follow(c.Request.Context(), user.ID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrFollowSelf):
			response.BadRequest(c, "Cannot follow yourself")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, nil)
}

// UnfollowUser 取消关注，未关注过也算成功
// @Summary 取消关注
// @Tags 用户
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param id path int true "被取关用户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Router /api/users/{id}/follow [delete]
func (h *Handler) UnfollowUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.relSvc.Unfollow(c.Request.Context(), user.ID, id); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, nil)
}

// Me 当前用户资料
// @Summary 当前用户资料
// @Tags 用户
// @Produce json
// @Param api-key header string true "用户凭证"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Router /api/users/me [get]
func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	h.profile(c, user.ID)
}

// GetUser 指定用户资料
// @Summary 用户资料
// @Tags 用户
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param id path int true "用户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.profile(c, id)
}

func (h *Handler) profile(c *gin.Context, targetID uint) {
	p, err := h.profileSvc.Profile(c.Request.Context(), targetID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": p})
}

type rotateAPIKeyRequest struct {
	NewAPIKey string `json:"new_api_key" binding:"required"`
}

// RotateAPIKey 原地替换当前用户的 api-key
// @Summary 轮换凭证
// @Tags 用户
// @Accept json
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param request body rotateAPIKeyRequest true "新凭证"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /api/users/me/api-key [put]
func (h *Handler) RotateAPIKey(c *gin.Context) {
	var req rotateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindingMessage(err))
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.userSvc.RotateAPIKey(c.Request.Context(), user, req.NewAPIKey); err != nil {
		if errors.Is(err, service.ErrAPIKeyTaken) {
			response.Conflict(c, "API key already in use")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "API key updated"})
}
