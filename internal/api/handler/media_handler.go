package handler

import (
	"errors"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// UploadMedia 上传附件
// @Summary 上传媒体文件
// @Tags 媒体
// @Accept multipart/form-data
// @Produce json
// @Param api-key header string true "用户凭证"
// @Param file formData file true "文件"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /api/medias [post]
func (h *Handler) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file")
		return
	}
	user := middleware.CurrentUser(c)
	id, err := h.mediaSvc.Upload(c.Request.Context(), user, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFile):
			response.BadRequest(c, "Uploaded file is empty")
		case errors.Is(err, service.ErrFileTooLarge):
			response.BadRequest(c, "Uploaded file is too large")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, gin.H{"media_id": id})
}

// GetMedia 读取附件内容，无需鉴权
// @Summary 下载媒体文件
// @Tags 媒体
// @Produce octet-stream
// @Param id path int true "媒体ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorBody
// @Router /api/media/{id} [get]
func (h *Handler) GetMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := h.mediaSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			response.NotFound(c, "Media not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	path := h.mediaSvc.Path(m)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(c, "Media not found")
		return
	}
	c.File(path)
}
