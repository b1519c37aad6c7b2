package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

const contextUserKey = "current_user"

// Auth 从 api-key 头解析用户，失败统一 401
func Auth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("api-key")
		if apiKey == "" {
			response.Unauthorized(c, "API key is required")
			return
		}
		user, err := auth.Authenticate(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, service.ErrInvalidAPIKey) {
				response.Unauthorized(c, "Invalid API key")
				return
			}
			response.InternalError(c, err)
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出 Auth 放进来的用户；只在 Auth 之后的 handler 里调用
func CurrentUser(c *gin.Context) *model.User {
	v, _ := c.Get(contextUserKey)
	u, _ := v.(*model.User)
	return u
}
