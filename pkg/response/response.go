package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/pkg/logger"
)

// 错误分类，直接进响应体的 error_type 字段
const (
	TypeValidation     = "Validation"
	TypeAuthentication = "Authentication"
	TypeAuthorization  = "Authorization"
	TypeNotFound       = "NotFound"
	TypeConflict       = "Conflict"
	TypeInternal       = "Internal"
)

// ErrorBody 统一错误包体
type ErrorBody struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// Success 写 {"result": true, ...fields}
func Success(c *gin.Context, fields gin.H) {
	body := gin.H{"result": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail 写统一错误包体并终止后续 handler
func Fail(c *gin.Context, status int, errType, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Result:       false,
		ErrorType:    errType,
		ErrorMessage: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, TypeValidation, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, TypeAuthentication, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, TypeAuthorization, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, TypeNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, TypeConflict, message)
}

func InternalError(c *gin.Context, err error) {
	logger.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
	Fail(c, http.StatusInternalServerError, TypeInternal, "internal server error")
}
